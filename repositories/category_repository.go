package repositories

import (
	"armust-news-cms/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	CreateCategory(category *models.Category) error
	CreateSubCategory(subCategory *models.SubCategory) error
	GetSubCategory(id uint) (*models.SubCategory, error)
	ListActive(limit int) ([]models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(category *models.Category) error {
	return conflict(r.db.Create(category).Error, "category name or slug already taken")
}

func (r *categoryRepository) CreateSubCategory(subCategory *models.SubCategory) error {
	return conflict(r.db.Create(subCategory).Error, "sub-category name or slug already taken")
}

func (r *categoryRepository) GetSubCategory(id uint) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	err := r.db.Preload("Category").First(&subCategory, id).Error
	return &subCategory, err
}

func (r *categoryRepository) ListActive(limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("status = ?", models.CategoryActive).
		Preload("SubCategories", "status = ?", models.CategoryActive).
		Order("\"order\"").
		Limit(limit).
		Find(&categories).Error
	return categories, err
}
