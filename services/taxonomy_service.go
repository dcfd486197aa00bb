package services

import (
	"armust-news-cms/models"
	"armust-news-cms/repositories"

	"github.com/gosimple/slug"
)

// TaxonomyService manages categories and slug redirects, both
// admin-curated surfaces.
type TaxonomyService interface {
	CreateCategory(name string, order int) (*models.Category, error)
	CreateSubCategory(categoryID uint, name, tag string, order int) (*models.SubCategory, error)
	ListCategories(limit int) ([]models.Category, error)
	CreateRedirect(req models.CreateRedirectRequest) (*models.NewsRedirect, error)
}

type taxonomyService struct {
	categoryRepo repositories.CategoryRepository
	redirectRepo repositories.RedirectRepository
	newsRepo     repositories.NewsRepository
}

func NewTaxonomyService(
	categoryRepo repositories.CategoryRepository,
	redirectRepo repositories.RedirectRepository,
	newsRepo repositories.NewsRepository,
) TaxonomyService {
	return &taxonomyService{
		categoryRepo: categoryRepo,
		redirectRepo: redirectRepo,
		newsRepo:     newsRepo,
	}
}

func (s *taxonomyService) CreateCategory(name string, order int) (*models.Category, error) {
	if name == "" {
		return nil, models.ErrorValidation{Message: "category name is required"}
	}

	category := &models.Category{Name: name, Slug: slug.Make(name), Order: order}
	if err := s.categoryRepo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) CreateSubCategory(categoryID uint, name, tag string, order int) (*models.SubCategory, error) {
	if name == "" {
		return nil, models.ErrorValidation{Message: "sub-category name is required"}
	}

	subCategory := &models.SubCategory{
		CategoryID: categoryID,
		Name:       name,
		Slug:       slug.Make(name),
		Order:      order,
	}
	if tag != "" {
		subCategory.Tag = tag
	}
	if err := s.categoryRepo.CreateSubCategory(subCategory); err != nil {
		return nil, err
	}
	return subCategory, nil
}

func (s *taxonomyService) ListCategories(limit int) ([]models.Category, error) {
	return s.categoryRepo.ListActive(limit)
}

// CreateRedirect maps an old slug to a live one. The target must exist
// as a real post so a redirect can never point into a 404.
func (s *taxonomyService) CreateRedirect(req models.CreateRedirectRequest) (*models.NewsRedirect, error) {
	redirect := &models.NewsRedirect{
		OldSlug:      req.OldSlug,
		RedirectSlug: req.RedirectSlug,
		IsActive:     true,
		Notes:        req.Notes,
	}
	if err := redirect.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.newsRepo.SlugExists(req.RedirectSlug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrorValidation{Message: "redirect target does not exist"}
	}

	if err := s.redirectRepo.Create(redirect); err != nil {
		return nil, err
	}
	return redirect, nil
}
