package services

import (
	"errors"

	"armust-news-cms/models"
	"armust-news-cms/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const sliderDefaultOrder = 5

// SliderService manages the staff-curated homepage carousel.
type SliderService interface {
	Create(authorID uint, req models.SliderRequest) (*models.Slider, error)
	Update(id uint, req models.SliderRequest) (*models.Slider, error)
	Deactivate(id uint) error
	ListActive() ([]models.Slider, error)
}

type sliderService struct {
	sliderRepo   repositories.SliderRepository
	categoryRepo repositories.CategoryRepository
	log          zerolog.Logger
}

func NewSliderService(
	sliderRepo repositories.SliderRepository,
	categoryRepo repositories.CategoryRepository,
	log zerolog.Logger,
) SliderService {
	return &sliderService{
		sliderRepo:   sliderRepo,
		categoryRepo: categoryRepo,
		log:          log.With().Str("service", "slider").Logger(),
	}
}

// Create slugs the slide from its sub-category name when one is set,
// falling back to the headline.
func (s *sliderService) Create(authorID uint, req models.SliderRequest) (*models.Slider, error) {
	base := req.Title
	if req.SubCategoryID != nil {
		subCategory, err := s.categoryRepo.GetSubCategory(*req.SubCategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorValidation{Message: "sub-category not found"}
			}
			return nil, err
		}
		base = subCategory.Name
	}

	slug, err := uniqueSlug(base, s.sliderRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	order := req.Order
	if order == 0 {
		order = sliderDefaultOrder
	}
	status := req.Status
	if status == "" {
		status = models.SliderActive
	}

	slider := &models.Slider{
		SubCategoryID: req.SubCategoryID,
		Title:         req.Title,
		Description:   req.Description,
		Image:         req.Image,
		Slug:          slug,
		DisplayOrder:  order,
		Status:        status,
		AuthorID:      authorID,
	}
	if err := s.sliderRepo.Create(slider); err != nil {
		return nil, err
	}

	s.log.Info().Uint("slider_id", slider.ID).Str("slug", slug).Msg("slider created")
	return slider, nil
}

// Update edits a slide in place. The slug stays stable so a published
// carousel URL never changes under an edit.
func (s *sliderService) Update(id uint, req models.SliderRequest) (*models.Slider, error) {
	slider, err := s.sliderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "slider not found"}
		}
		return nil, err
	}

	slider.SubCategoryID = req.SubCategoryID
	slider.Title = req.Title
	slider.Description = req.Description
	slider.Image = req.Image
	if req.Order != 0 {
		slider.DisplayOrder = req.Order
	}
	if req.Status != "" {
		slider.Status = req.Status
	}

	if err := s.sliderRepo.Update(slider); err != nil {
		return nil, err
	}
	return slider, nil
}

// Deactivate is a status flip; the row keeps its slug and ordering.
func (s *sliderService) Deactivate(id uint) error {
	slider, err := s.sliderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "slider not found"}
		}
		return err
	}

	slider.Status = models.SliderInactive
	return s.sliderRepo.Update(slider)
}

func (s *sliderService) ListActive() ([]models.Slider, error) {
	return s.sliderRepo.ListActive()
}
