package repositories

import (
	"armust-news-cms/models"

	"gorm.io/gorm"
)

type RedirectRepository interface {
	Create(redirect *models.NewsRedirect) error
	GetActiveByOldSlug(oldSlug string) (*models.NewsRedirect, error)
}

type redirectRepository struct {
	db *gorm.DB
}

func NewRedirectRepository(db *gorm.DB) RedirectRepository {
	return &redirectRepository{db: db}
}

func (r *redirectRepository) Create(redirect *models.NewsRedirect) error {
	return conflict(r.db.Create(redirect).Error, "a redirect for this slug already exists")
}

func (r *redirectRepository) GetActiveByOldSlug(oldSlug string) (*models.NewsRedirect, error) {
	var redirect models.NewsRedirect
	err := r.db.Where("old_slug = ? AND is_active = true", oldSlug).First(&redirect).Error
	return &redirect, err
}
