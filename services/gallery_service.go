package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"armust-news-cms/models"
	"armust-news-cms/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type GalleryService interface {
	AddImages(journalistID uint, req models.GalleryUploadRequest) ([]models.Gallery, error)
	ListActive(journalistID uint) ([]models.Gallery, error)
	Remove(id, journalistID uint) error
}

type galleryService struct {
	galleryRepo    repositories.GalleryRepository
	journalistRepo repositories.JournalistRepository
	uploadDir      string
	log            zerolog.Logger
}

func NewGalleryService(
	galleryRepo repositories.GalleryRepository,
	journalistRepo repositories.JournalistRepository,
	uploadDir string,
	log zerolog.Logger,
) GalleryService {
	return &galleryService{
		galleryRepo:    galleryRepo,
		journalistRepo: journalistRepo,
		uploadDir:      uploadDir,
		log:            log.With().Str("service", "gallery").Logger(),
	}
}

// AddImages stores a batch of uploads for an account. The batch is
// capped at the account's remaining quota: active images count against
// gallery_post_limit, soft-deleted ones do not. Images past the cap are
// silently dropped, matching the upload form's behaviour.
func (s *galleryService) AddImages(journalistID uint, req models.GalleryUploadRequest) ([]models.Gallery, error) {
	journalist, err := s.journalistRepo.GetByID(journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid journalist account"}
		}
		return nil, err
	}

	active, err := s.galleryRepo.CountActive(journalistID)
	if err != nil {
		return nil, err
	}
	remaining := int64(journalist.GalleryPostLimit) - active
	if remaining <= 0 {
		return nil, models.ErrorValidation{
			Message: fmt.Sprintf("gallery limit of %d images reached", journalist.GalleryPostLimit),
		}
	}

	images := req.Images
	if int64(len(images)) > remaining {
		images = images[:remaining]
	}

	var saved []models.Gallery
	for _, data := range images {
		path, err := s.saveImage(journalistID, data)
		if err != nil {
			return saved, err
		}
		gallery := models.Gallery{
			JournalistID: journalistID,
			Image:        path,
			Status:       models.GalleryActive,
		}
		if err := s.galleryRepo.Create(&gallery); err != nil {
			return saved, err
		}
		saved = append(saved, gallery)
	}

	s.log.Info().Uint("journalist_id", journalistID).Int("count", len(saved)).Msg("gallery images added")
	return saved, nil
}

// imageExts is the accepted upload extension set. The data-URL header
// is client input and must never reach the filesystem path unchecked.
var imageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// saveImage decodes a base64 data URL to a uuid-named file under the
// account's upload directory.
func (s *galleryService) saveImage(journalistID uint, data string) (string, error) {
	ext := "jpg"
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		header := data[:idx]
		if slash := strings.Index(header, "/"); slash >= 0 {
			ext = strings.ToLower(header[slash+1:])
		}
		data = data[idx+len(";base64,"):]
	}
	if !imageExts[ext] {
		return "", models.ErrorValidation{Message: "unsupported image type"}
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", models.ErrorValidation{Message: "invalid image encoding"}
	}

	dir := filepath.Join(s.uploadDir, "gallery", fmt.Sprintf("%d", journalistID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	path := filepath.Join(dir, name)
	if rel, err := filepath.Rel(s.uploadDir, path); err != nil || strings.HasPrefix(rel, "..") {
		return "", models.ErrorValidation{Message: "invalid image path"}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *galleryService) ListActive(journalistID uint) ([]models.Gallery, error) {
	return s.galleryRepo.ListActive(journalistID)
}

// Remove soft-deletes an image by flipping its status. The row and the
// file stay; only the quota slot is released.
func (s *galleryService) Remove(id, journalistID uint) error {
	gallery, err := s.galleryRepo.GetForJournalist(id, journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "gallery image not found"}
		}
		return err
	}

	gallery.Status = models.GalleryInactive
	return s.galleryRepo.Update(gallery)
}
