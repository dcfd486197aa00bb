package repositories

import (
	"fmt"

	"armust-news-cms/models"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *models.VideoNews) error
	GetByID(id uint) (*models.VideoNews, error)
	GetByIDForJournalist(id, journalistID uint) (*models.VideoNews, error)
	GetBySlug(slug string) (*models.VideoNews, error)
	Update(video *models.VideoNews) error
	SlugExists(slug string) (bool, error)
	GetList(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.VideoNews, int64, error)
	CountByTypeAndStatus(journalistID uint, videoType models.VideoType, status models.ContentStatus) (int64, error)
	CountAll(journalistID uint) (int64, error)
	ListForSitemap(filter models.SitemapFilter) ([]models.VideoNews, error)
	IncrementViewCounter(id uint) error
	StreamAll(fn func(video *models.VideoNews) error) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *models.VideoNews) error {
	return conflict(r.db.Create(video).Error, "slug already taken")
}

func (r *videoRepository) GetByID(id uint) (*models.VideoNews, error) {
	var video models.VideoNews
	err := r.db.Preload("SubCategory").Preload("Author").Preload("Journalist").
		First(&video, id).Error
	return &video, err
}

func (r *videoRepository) GetByIDForJournalist(id, journalistID uint) (*models.VideoNews, error) {
	var video models.VideoNews
	err := r.db.Preload("SubCategory").
		Where("id = ? AND journalist_id = ?", id, journalistID).
		First(&video).Error
	return &video, err
}

func (r *videoRepository) GetBySlug(slug string) (*models.VideoNews, error) {
	var video models.VideoNews
	err := r.db.Preload("SubCategory").Preload("Author").Preload("Journalist").
		Where("slug = ?", slug).
		First(&video).Error
	return &video, err
}

func (r *videoRepository) Update(video *models.VideoNews) error {
	return conflict(r.db.Save(video).Error, "slug already taken")
}

func (r *videoRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.VideoNews{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *videoRepository) GetList(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.VideoNews, int64, error) {
	var videos []models.VideoNews
	var total int64

	query := r.db.Model(&models.VideoNews{}).Preload("SubCategory").Preload("Journalist").Preload("Author")

	if isPublic {
		query = query.Where("is_active = ?", models.ContentActive)
	} else if journalistID > 0 {
		query = query.Where("journalist_id = ?", journalistID)
		if params.Status != "" {
			query = query.Where("is_active = ?", params.Status)
		}
	}

	if params.VideoType != "" {
		query = query.Where("video_type = ?", params.VideoType)
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

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("video_news.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&videos).Error

	return videos, total, err
}

func (r *videoRepository) CountByTypeAndStatus(journalistID uint, videoType models.VideoType, status models.ContentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.VideoNews{}).
		Where("journalist_id = ? AND video_type = ? AND is_active = ?", journalistID, videoType, status).
		Count(&count).Error
	return count, err
}

func (r *videoRepository) CountAll(journalistID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.VideoNews{}).
		Where("journalist_id = ?", journalistID).
		Count(&count).Error
	return count, err
}

func (r *videoRepository) ListForSitemap(filter models.SitemapFilter) ([]models.VideoNews, error) {
	var videos []models.VideoNews

	query := r.db.Model(&models.VideoNews{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", models.ContentActive)
	}
	if filter.VideoOnly {
		query = query.Where("video_type = ?", models.VideoTypeVideo)
	}
	if filter.From != nil {
		query = query.Where("video_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("video_date <= ?", *filter.To)
	}

	err := query.Order("updated_at desc").Find(&videos).Error
	return videos, err
}

func (r *videoRepository) IncrementViewCounter(id uint) error {
	return r.db.Model(&models.VideoNews{}).
		Where("id = ?", id).
		UpdateColumn("view_counter", gorm.Expr("view_counter + 1")).Error
}

func (r *videoRepository) StreamAll(fn func(video *models.VideoNews) error) error {
	var batch []models.VideoNews
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
