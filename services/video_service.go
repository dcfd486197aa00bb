package services

import (
	"errors"

	"armust-news-cms/models"
	"armust-news-cms/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type VideoService interface {
	Submit(journalistID uint, req models.SubmitVideoRequest) (*models.VideoNews, error)
	Update(id, journalistID uint, req models.SubmitVideoRequest) (*models.VideoNews, error)
	Moderate(id uint, status models.ContentStatus) (*models.VideoNews, error)
	GetBySlug(slug string) (*models.VideoNews, error)
	ListMine(journalistID uint, params models.NewsListParams) ([]models.VideoNews, int64, error)
	ListPublic(params models.NewsListParams) ([]models.VideoNews, int64, error)
}

type videoService struct {
	videoRepo repositories.VideoRepository
	log       zerolog.Logger
}

func NewVideoService(videoRepo repositories.VideoRepository, log zerolog.Logger) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		log:       log.With().Str("service", "video").Logger(),
	}
}

func (s *videoService) Submit(journalistID uint, req models.SubmitVideoRequest) (*models.VideoNews, error) {
	videoSlug, err := uniqueSlug(req.Title, s.videoRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	video := &models.VideoNews{
		SubCategoryID: req.SubCategoryID,
		VideoType:     req.VideoType,
		Title:         req.Title,
		Slug:          videoSlug,
		ShortDesc:     req.ShortDesc,
		Body:          req.Body,
		VideoURL:      req.VideoURL,
		Tag:           req.Tag,
		ScheduleDate:  req.ScheduleDate,
		Status:        models.ContentInactive,
	}
	if req.Thumbnail != "" {
		video.Thumbnail = req.Thumbnail
	}
	video.SetOwner(models.SubmittedBy(journalistID))

	if err := video.Validate(); err != nil {
		return nil, err
	}
	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

// Update re-queues the video for moderation; see PostService.Update for
// the matching article behaviour.
func (s *videoService) Update(id, journalistID uint, req models.SubmitVideoRequest) (*models.VideoNews, error) {
	video, err := s.videoRepo.GetByIDForJournalist(id, journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "video not found"}
		}
		return nil, err
	}

	oldStatus := video.Status

	video.SubCategoryID = req.SubCategoryID
	video.VideoType = req.VideoType
	video.Title = req.Title
	video.ShortDesc = req.ShortDesc
	video.Body = req.Body
	video.VideoURL = req.VideoURL
	if req.Thumbnail != "" {
		video.Thumbnail = req.Thumbnail
	}
	if req.Tag != "" {
		video.Tag = req.Tag
	}
	if !req.ScheduleDate.IsZero() {
		video.ScheduleDate = req.ScheduleDate
	}
	video.Status = models.ContentInactive

	if err := video.Validate(); err != nil {
		return nil, err
	}
	if err := s.videoRepo.Update(video); err != nil {
		return nil, err
	}

	s.recordTransition(video, oldStatus)
	return video, nil
}

func (s *videoService) Moderate(id uint, status models.ContentStatus) (*models.VideoNews, error) {
	video, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "video not found"}
		}
		return nil, err
	}

	oldStatus := video.Status
	video.Status = status
	if err := s.videoRepo.Update(video); err != nil {
		return nil, err
	}

	s.recordTransition(video, oldStatus)
	return video, nil
}

func (s *videoService) recordTransition(video *models.VideoNews, oldStatus models.ContentStatus) {
	if !StatusChanged(string(oldStatus), string(video.Status), false) {
		return
	}
	s.log.Info().
		Uint("video_id", video.ID).
		Str("slug", video.Slug).
		Str("from", string(oldStatus)).
		Str("to", string(video.Status)).
		Msg("content status transition")
}

func (s *videoService) GetBySlug(slug string) (*models.VideoNews, error) {
	video, err := s.videoRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "video not found"}
		}
		return nil, err
	}
	if video.Status != models.ContentActive {
		return nil, models.ErrorNotFound{Message: "video not found"}
	}
	if err := s.videoRepo.IncrementViewCounter(video.ID); err != nil {
		s.log.Warn().Err(err).Uint("video_id", video.ID).Msg("view counter update failed")
	}
	return video, nil
}

func (s *videoService) ListMine(journalistID uint, params models.NewsListParams) ([]models.VideoNews, int64, error) {
	return s.videoRepo.GetList(params, journalistID, false)
}

func (s *videoService) ListPublic(params models.NewsListParams) ([]models.VideoNews, int64, error) {
	return s.videoRepo.GetList(params, 0, true)
}
