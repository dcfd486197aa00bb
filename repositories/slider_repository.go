package repositories

import (
	"armust-news-cms/models"

	"gorm.io/gorm"
)

type SliderRepository interface {
	Create(slider *models.Slider) error
	GetByID(id uint) (*models.Slider, error)
	Update(slider *models.Slider) error
	ListActive() ([]models.Slider, error)
	SlugExists(slug string) (bool, error)
}

type sliderRepository struct {
	db *gorm.DB
}

func NewSliderRepository(db *gorm.DB) SliderRepository {
	return &sliderRepository{db: db}
}

func (r *sliderRepository) Create(slider *models.Slider) error {
	return conflict(r.db.Create(slider).Error, "slider slug already taken")
}

func (r *sliderRepository) GetByID(id uint) (*models.Slider, error) {
	var slider models.Slider
	err := r.db.Preload("SubCategory").First(&slider, id).Error
	return &slider, err
}

func (r *sliderRepository) Update(slider *models.Slider) error {
	return r.db.Save(slider).Error
}

func (r *sliderRepository) ListActive() ([]models.Slider, error) {
	var sliders []models.Slider
	err := r.db.Where("status = ?", models.SliderActive).
		Preload("SubCategory").
		Order("display_order, post_date desc").
		Find(&sliders).Error
	return sliders, err
}

func (r *sliderRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Slider{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
