package services

import (
	"testing"

	"armust-news-cms/mocks"
	"armust-news-cms/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sliderFixture(taken map[string]bool) (SliderService, *[]models.Slider) {
	var created []models.Slider

	sliderRepo := &mocks.SliderRepository{
		CreateFn: func(s *models.Slider) error {
			s.ID = uint(len(created) + 1)
			created = append(created, *s)
			return nil
		},
		SlugExistsFn: func(slug string) (bool, error) {
			return taken[slug], nil
		},
	}
	categoryRepo := &mocks.CategoryRepository{
		GetSubCategoryFn: func(id uint) (*models.SubCategory, error) {
			if id != 4 {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.SubCategory{ID: 4, Name: "World Politics"}, nil
		},
	}
	svc := NewSliderService(sliderRepo, categoryRepo, zerolog.Nop())
	return svc, &created
}

func TestCreateSliderDefaults(t *testing.T) {
	svc, created := sliderFixture(nil)
	subCategoryID := uint(4)

	slider, err := svc.Create(9, models.SliderRequest{
		SubCategoryID: &subCategoryID,
		Title:         "Election Night",
		Image:         "blog/election.jpg",
	})
	require.NoError(t, err)
	require.Len(t, *created, 1)

	// Slug comes from the sub-category, not the headline.
	assert.Equal(t, "world-politics", slider.Slug)
	assert.Equal(t, sliderDefaultOrder, slider.DisplayOrder)
	assert.Equal(t, models.SliderActive, slider.Status)
	assert.Equal(t, uint(9), slider.AuthorID)
}

func TestCreateSliderSlugFromTitleWithoutSubCategory(t *testing.T) {
	svc, _ := sliderFixture(nil)

	slider, err := svc.Create(9, models.SliderRequest{
		Title: "Morning Briefing",
		Image: "blog/briefing.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "morning-briefing", slider.Slug)
}

func TestCreateSliderBumpsTakenSlug(t *testing.T) {
	svc, _ := sliderFixture(map[string]bool{"world-politics": true})
	subCategoryID := uint(4)

	slider, err := svc.Create(9, models.SliderRequest{
		SubCategoryID: &subCategoryID,
		Title:         "Election Night",
		Image:         "blog/election.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "world-politics-2", slider.Slug)
}

func TestCreateSliderUnknownSubCategory(t *testing.T) {
	svc, created := sliderFixture(nil)
	subCategoryID := uint(99)

	_, err := svc.Create(9, models.SliderRequest{
		SubCategoryID: &subCategoryID,
		Title:         "Election Night",
		Image:         "blog/election.jpg",
	})
	assert.IsType(t, models.ErrorValidation{}, err)
	assert.Empty(t, *created)
}

func TestUpdateSliderKeepsSlug(t *testing.T) {
	stored := &models.Slider{ID: 2, Slug: "world-politics", Title: "Old", DisplayOrder: 5, Status: models.SliderActive}
	var updated *models.Slider
	sliderRepo := &mocks.SliderRepository{
		GetByIDFn: func(uint) (*models.Slider, error) { return stored, nil },
		UpdateFn: func(s *models.Slider) error {
			updated = s
			return nil
		},
	}
	svc := NewSliderService(sliderRepo, &mocks.CategoryRepository{}, zerolog.Nop())

	slider, err := svc.Update(2, models.SliderRequest{
		Title:  "New Headline",
		Image:  "blog/new.jpg",
		Order:  1,
		Status: models.SliderInactive,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "world-politics", slider.Slug)
	assert.Equal(t, "New Headline", slider.Title)
	assert.Equal(t, 1, slider.DisplayOrder)
	assert.Equal(t, models.SliderInactive, slider.Status)
}

func TestDeactivateSliderFlipsStatus(t *testing.T) {
	stored := &models.Slider{ID: 2, Status: models.SliderActive}
	var updated *models.Slider
	sliderRepo := &mocks.SliderRepository{
		GetByIDFn: func(uint) (*models.Slider, error) { return stored, nil },
		UpdateFn: func(s *models.Slider) error {
			updated = s
			return nil
		},
	}
	svc := NewSliderService(sliderRepo, &mocks.CategoryRepository{}, zerolog.Nop())

	require.NoError(t, svc.Deactivate(2))
	require.NotNil(t, updated)
	assert.Equal(t, models.SliderInactive, updated.Status)
}

func TestDeactivateSliderMissing(t *testing.T) {
	sliderRepo := &mocks.SliderRepository{
		GetByIDFn: func(uint) (*models.Slider, error) { return nil, gorm.ErrRecordNotFound },
	}
	svc := NewSliderService(sliderRepo, &mocks.CategoryRepository{}, zerolog.Nop())

	err := svc.Deactivate(99)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
