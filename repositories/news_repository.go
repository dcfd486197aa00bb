package repositories

import (
	"fmt"
	"time"

	"armust-news-cms/models"

	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(post *models.NewsPost) error
	GetByID(id uint) (*models.NewsPost, error)
	GetByIDForJournalist(id, journalistID uint) (*models.NewsPost, error)
	GetBySlug(slug string) (*models.NewsPost, error)
	Update(post *models.NewsPost) error
	SlugExists(slug string) (bool, error)
	GetList(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.NewsPost, int64, error)
	CountByStatus(journalistID uint, status models.ContentStatus) (int64, error)
	CountActiveArticles(journalistID uint) (int64, error)
	ListEventsBefore(t time.Time, limit int) ([]models.NewsPost, error)
	ListForSitemap(filter models.SitemapFilter) ([]models.NewsPost, error)
	IncrementViewCounter(id uint) error
	StreamAll(fn func(post *models.NewsPost) error) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(post *models.NewsPost) error {
	return conflict(r.db.Create(post).Error, "slug already taken")
}

func (r *newsRepository) GetByID(id uint) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.db.Preload("SubCategory").Preload("Author").Preload("Journalist").
		First(&post, id).Error
	return &post, err
}

func (r *newsRepository) GetByIDForJournalist(id, journalistID uint) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.db.Preload("SubCategory").
		Where("id = ? AND journalist_id = ?", id, journalistID).
		First(&post).Error
	return &post, err
}

func (r *newsRepository) GetBySlug(slug string) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.db.Preload("SubCategory").Preload("Author").Preload("Journalist").
		Where("slug = ?", slug).
		First(&post).Error
	return &post, err
}

func (r *newsRepository) Update(post *models.NewsPost) error {
	return conflict(r.db.Save(post).Error, "slug already taken")
}

func (r *newsRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.NewsPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *newsRepository) GetList(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.NewsPost, int64, error) {
	var posts []models.NewsPost
	var total int64

	query := r.db.Model(&models.NewsPost{}).Preload("SubCategory").Preload("Journalist").Preload("Author")

	if isPublic {
		query = query.Where("status = ?", models.ContentActive)
	} else if journalistID > 0 {
		query = query.Where("journalist_id = ?", journalistID)
		if params.Status != "" {
			query = query.Where("status = ?", params.Status)
		}
	}

	if params.Headline {
		query = query.Where("headline = true")
	}
	if params.Article {
		query = query.Where("article = true")
	}
	if params.Trending {
		query = query.Where("trending = true")
	}
	if params.Breaking {
		query = query.Where("breaking_news = true")
	}
	if params.Event {
		query = query.Where("event = true")
	}

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("news_posts.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&posts).Error

	return posts, total, err
}

func (r *newsRepository) CountByStatus(journalistID uint, status models.ContentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsPost{}).
		Where("journalist_id = ? AND status = ?", journalistID, status).
		Count(&count).Error
	return count, err
}

func (r *newsRepository) CountActiveArticles(journalistID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsPost{}).
		Where("journalist_id = ? AND status = ? AND article = true", journalistID, models.ContentActive).
		Count(&count).Error
	return count, err
}

func (r *newsRepository) ListEventsBefore(t time.Time, limit int) ([]models.NewsPost, error) {
	var posts []models.NewsPost
	err := r.db.Where("schedule_date < ? AND event = true AND status = ?", t, models.ContentActive).
		Order("id desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *newsRepository) ListForSitemap(filter models.SitemapFilter) ([]models.NewsPost, error) {
	var posts []models.NewsPost

	query := r.db.Model(&models.NewsPost{})
	if filter.ActiveOnly {
		query = query.Where("status = ?", models.ContentActive)
	}
	if filter.ArticlesOnly {
		query = query.Where("article = true")
	}
	if filter.WithImage {
		query = query.Where("image <> ''")
	}
	if filter.From != nil {
		query = query.Where("post_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("post_date <= ?", *filter.To)
	}

	err := query.Order("updated_at desc").Find(&posts).Error
	return posts, err
}

func (r *newsRepository) IncrementViewCounter(id uint) error {
	return r.db.Model(&models.NewsPost{}).
		Where("id = ?", id).
		UpdateColumn("view_counter", gorm.Expr("view_counter + 1")).Error
}

// StreamAll walks every post in batches for export without loading the
// table into memory.
func (r *newsRepository) StreamAll(fn func(post *models.NewsPost) error) error {
	var batch []models.NewsPost
	result := r.db.Preload("SubCategory").Preload("Author").Preload("Journalist").
		Order("id").
		FindInBatches(&batch, 500, func(tx *gorm.DB, _ int) error {
			for i := range batch {
				if err := fn(&batch[i]); err != nil {
					return err
				}
			}
			return nil
		})
	return result.Error
}
