package repositories

import (
	"armust-news-cms/models"

	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(gallery *models.Gallery) error
	GetForJournalist(id, journalistID uint) (*models.Gallery, error)
	Update(gallery *models.Gallery) error
	CountActive(journalistID uint) (int64, error)
	ListActive(journalistID uint) ([]models.Gallery, error)
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(gallery *models.Gallery) error {
	return r.db.Create(gallery).Error
}

func (r *galleryRepository) GetForJournalist(id, journalistID uint) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.Where("id = ? AND journalist_id = ?", id, journalistID).First(&gallery).Error
	return &gallery, err
}

func (r *galleryRepository) Update(gallery *models.Gallery) error {
	return r.db.Save(gallery).Error
}

func (r *galleryRepository) CountActive(journalistID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Gallery{}).
		Where("journalist_id = ? AND status = ?", journalistID, models.GalleryActive).
		Count(&count).Error
	return count, err
}

func (r *galleryRepository) ListActive(journalistID uint) ([]models.Gallery, error) {
	var galleries []models.Gallery
	err := r.db.Where("journalist_id = ? AND status = ?", journalistID, models.GalleryActive).
		Order("id").
		Find(&galleries).Error
	return galleries, err
}
