package services

import (
	"errors"

	"armust-news-cms/models"
	"armust-news-cms/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type PostService interface {
	Submit(journalistID uint, req models.SubmitNewsRequest) (*models.NewsPost, error)
	Update(id, journalistID uint, req models.SubmitNewsRequest) (*models.NewsPost, error)
	Moderate(id uint, status models.ContentStatus) (*models.NewsPost, error)
	GetBySlug(slug string) (*models.NewsPost, error)
	ListMine(journalistID uint, params models.NewsListParams) ([]models.NewsPost, int64, error)
	ListPublic(params models.NewsListParams) ([]models.NewsPost, int64, error)
}

type postService struct {
	newsRepo     repositories.NewsRepository
	redirectRepo repositories.RedirectRepository
	log          zerolog.Logger
}

func NewPostService(newsRepo repositories.NewsRepository, redirectRepo repositories.RedirectRepository, log zerolog.Logger) PostService {
	return &postService{
		newsRepo:     newsRepo,
		redirectRepo: redirectRepo,
		log:          log.With().Str("service", "post").Logger(),
	}
}

// Submit creates a post on behalf of a journalist. Submissions always
// enter moderation as inactive regardless of anything the client sent.
func (s *postService) Submit(journalistID uint, req models.SubmitNewsRequest) (*models.NewsPost, error) {
	postSlug, err := uniqueSlug(req.Title, s.newsRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	post := &models.NewsPost{
		SubCategoryID: req.SubCategoryID,
		Title:         req.Title,
		ShortDesc:     req.ShortDesc,
		Body:          req.Body,
		Image:         req.Image,
		Slug:          postSlug,
		Tag:           req.Tag,
		ScheduleDate:  req.ScheduleDate,
		Status:        models.ContentInactive,
	}
	post.SetOwner(models.SubmittedBy(journalistID))

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.newsRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update lets a journalist edit their own post. Any edit drops the post
// back to inactive so it passes moderation again; the status transition
// is recorded but triggers no mail.
func (s *postService) Update(id, journalistID uint, req models.SubmitNewsRequest) (*models.NewsPost, error) {
	post, err := s.newsRepo.GetByIDForJournalist(id, journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, err
	}

	oldStatus := post.Status

	post.SubCategoryID = req.SubCategoryID
	post.Title = req.Title
	post.ShortDesc = req.ShortDesc
	post.Body = req.Body
	if req.Image != "" {
		post.Image = req.Image
	}
	if req.Tag != "" {
		post.Tag = req.Tag
	}
	if !req.ScheduleDate.IsZero() {
		post.ScheduleDate = req.ScheduleDate
	}
	post.Status = models.ContentInactive

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.newsRepo.Update(post); err != nil {
		return nil, err
	}

	s.recordTransition(post, oldStatus)
	return post, nil
}

// Moderate is the editorial path: an admin moves a post between active,
// inactive and rejected.
func (s *postService) Moderate(id uint, status models.ContentStatus) (*models.NewsPost, error) {
	post, err := s.newsRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, err
	}

	oldStatus := post.Status
	post.Status = status
	if err := s.newsRepo.Update(post); err != nil {
		return nil, err
	}

	s.recordTransition(post, oldStatus)
	return post, nil
}

// recordTransition logs a real status change. Content transitions are
// observable in the logs only; no notification goes out for them.
func (s *postService) recordTransition(post *models.NewsPost, oldStatus models.ContentStatus) {
	if !StatusChanged(string(oldStatus), string(post.Status), false) {
		return
	}
	s.log.Info().
		Uint("post_id", post.ID).
		Str("slug", post.Slug).
		Str("from", string(oldStatus)).
		Str("to", string(post.Status)).
		Msg("content status transition")
}

// GetBySlug serves the public article page. A miss falls back to the
// redirect table so renamed posts keep their old links alive; a hit
// bumps the view counter out of band of the read.
func (s *postService) GetBySlug(slug string) (*models.NewsPost, error) {
	post, err := s.newsRepo.GetBySlug(slug)
	if err == nil {
		if post.Status != models.ContentActive {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		if err := s.newsRepo.IncrementViewCounter(post.ID); err != nil {
			s.log.Warn().Err(err).Uint("post_id", post.ID).Msg("view counter update failed")
		}
		return post, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	redirect, rerr := s.redirectRepo.GetActiveByOldSlug(slug)
	if rerr != nil {
		if errors.Is(rerr, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, rerr
	}

	// Single hop only; chained redirects are not followed.
	post, err = s.newsRepo.GetBySlug(redirect.RedirectSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, err
	}
	if post.Status != models.ContentActive {
		return nil, models.ErrorNotFound{Message: "post not found"}
	}
	if err := s.newsRepo.IncrementViewCounter(post.ID); err != nil {
		s.log.Warn().Err(err).Uint("post_id", post.ID).Msg("view counter update failed")
	}
	return post, nil
}

func (s *postService) ListMine(journalistID uint, params models.NewsListParams) ([]models.NewsPost, int64, error) {
	return s.newsRepo.GetList(params, journalistID, false)
}

func (s *postService) ListPublic(params models.NewsListParams) ([]models.NewsPost, int64, error) {
	return s.newsRepo.GetList(params, 0, true)
}
