package services

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"armust-news-cms/mocks"
	"armust-news-cms/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galleryFixture(t *testing.T, active int64, limit int) (GalleryService, *[]models.Gallery) {
	t.Helper()
	var created []models.Gallery

	galleryRepo := &mocks.GalleryRepository{
		CountActiveFn: func(uint) (int64, error) { return active, nil },
		CreateFn: func(g *models.Gallery) error {
			g.ID = uint(len(created) + 1)
			created = append(created, *g)
			return nil
		},
	}
	journalistRepo := &mocks.JournalistRepository{
		GetByIDFn: func(uint) (*models.Journalist, error) {
			return &models.Journalist{ID: 6, GalleryPostLimit: limit}, nil
		},
	}
	svc := NewGalleryService(galleryRepo, journalistRepo, t.TempDir(), zerolog.Nop())
	return svc, &created
}

func dataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))
}

func TestAddImagesWithinQuota(t *testing.T) {
	svc, created := galleryFixture(t, 2, 8)

	saved, err := svc.AddImages(6, models.GalleryUploadRequest{Images: []string{dataURL(), dataURL()}})
	require.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Len(t, *created, 2)
	for _, g := range *created {
		assert.Equal(t, models.GalleryActive, g.Status)
		assert.Equal(t, uint(6), g.JournalistID)
		assert.NotEmpty(t, g.Image)
	}
}

func TestAddImagesCapsAtRemainingQuota(t *testing.T) {
	// 7 of 8 slots used: a three-image batch stores only one.
	svc, created := galleryFixture(t, 7, 8)

	saved, err := svc.AddImages(6, models.GalleryUploadRequest{Images: []string{dataURL(), dataURL(), dataURL()}})
	require.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Len(t, *created, 1)
}

func TestAddImagesRejectedWhenFull(t *testing.T) {
	svc, created := galleryFixture(t, 8, 8)

	_, err := svc.AddImages(6, models.GalleryUploadRequest{Images: []string{dataURL()}})
	assert.IsType(t, models.ErrorValidation{}, err)
	assert.Empty(t, *created)
}

func TestAddImagesRejectsBadEncoding(t *testing.T) {
	svc, _ := galleryFixture(t, 0, 8)

	_, err := svc.AddImages(6, models.GalleryUploadRequest{Images: []string{"data:image/png;base64,@@not-base64@@"}})
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestAddImagesRejectsTraversalExtension(t *testing.T) {
	base := t.TempDir()
	uploadDir := filepath.Join(base, "uploads")
	outside := filepath.Join(base, "escape")
	require.NoError(t, os.MkdirAll(outside, 0o755))

	galleryRepo := &mocks.GalleryRepository{
		CountActiveFn: func(uint) (int64, error) { return 0, nil },
		CreateFn: func(*models.Gallery) error {
			t.Fatal("image stored for rejected upload")
			return nil
		},
	}
	journalistRepo := &mocks.JournalistRepository{
		GetByIDFn: func(uint) (*models.Journalist, error) {
			return &models.Journalist{ID: 6, GalleryPostLimit: 8}, nil
		},
	}
	svc := NewGalleryService(galleryRepo, journalistRepo, uploadDir, zerolog.Nop())

	payload := "data:image/../../../../escape/evil;base64," + base64.StdEncoding.EncodeToString([]byte("owned"))
	_, err := svc.AddImages(6, models.GalleryUploadRequest{Images: []string{payload}})
	assert.IsType(t, models.ErrorValidation{}, err)

	// Nothing may land outside the upload root.
	entries, readErr := os.ReadDir(outside)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestAddImagesRejectsUnknownExtension(t *testing.T) {
	svc, created := galleryFixture(t, 0, 8)

	payload := "data:application/zip;base64," + base64.StdEncoding.EncodeToString([]byte("not-an-image"))
	_, err := svc.AddImages(6, models.GalleryUploadRequest{Images: []string{payload}})
	assert.IsType(t, models.ErrorValidation{}, err)
	assert.Empty(t, *created)
}

func TestRemoveSoftDeletes(t *testing.T) {
	stored := &models.Gallery{ID: 3, JournalistID: 6, Status: models.GalleryActive}
	var updated *models.Gallery
	galleryRepo := &mocks.GalleryRepository{
		GetForJournalistFn: func(id, journalistID uint) (*models.Gallery, error) {
			return stored, nil
		},
		UpdateFn: func(g *models.Gallery) error {
			updated = g
			return nil
		},
	}
	svc := NewGalleryService(galleryRepo, &mocks.JournalistRepository{}, t.TempDir(), zerolog.Nop())

	require.NoError(t, svc.Remove(3, 6))
	require.NotNil(t, updated)
	assert.Equal(t, models.GalleryInactive, updated.Status)
}
