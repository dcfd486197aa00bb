package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"armust-news-cms/models"
	"armust-news-cms/repositories"
)

// ExportService streams admin CSV reports. Rows are written as they
// arrive from the batched table walk, so the export never buffers the
// full data set.
type ExportService interface {
	StreamNewsCSV(w io.Writer) error
	StreamVideoCSV(w io.Writer) error
}

type exportService struct {
	newsRepo  repositories.NewsRepository
	videoRepo repositories.VideoRepository
}

func NewExportService(newsRepo repositories.NewsRepository, videoRepo repositories.VideoRepository) ExportService {
	return &exportService{newsRepo: newsRepo, videoRepo: videoRepo}
}

func (s *exportService) StreamNewsCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{
		"id", "title", "slug", "status", "posted_by", "sub_category",
		"tag", "headline", "article", "trending", "breaking_news", "event",
		"view_counter", "post_date", "updated_at",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	err := s.newsRepo.StreamAll(func(post *models.NewsPost) error {
		subCategory := ""
		if post.SubCategory != nil {
			subCategory = post.SubCategory.Name
		}
		return writer.Write([]string{
			fmt.Sprintf("%d", post.ID),
			post.Title,
			post.Slug,
			string(post.Status),
			post.PostedBy(),
			subCategory,
			post.Tag,
			boolCell(post.Headline),
			boolCell(post.Article),
			boolCell(post.Trending),
			boolCell(post.BreakingNews),
			boolCell(post.Event),
			fmt.Sprintf("%d", post.ViewCounter),
			post.PostDate.UTC().Format(sitemapTimeLayout),
			post.UpdatedAt.UTC().Format(sitemapTimeLayout),
		})
	})
	if err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func (s *exportService) StreamVideoCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{
		"id", "title", "slug", "video_type", "watch_link", "status",
		"posted_by", "sub_category", "view_counter", "video_date", "updated_at",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	err := s.videoRepo.StreamAll(func(video *models.VideoNews) error {
		subCategory := ""
		if video.SubCategory != nil {
			subCategory = video.SubCategory.Name
		}
		return writer.Write([]string{
			fmt.Sprintf("%d", video.ID),
			video.Title,
			video.Slug,
			string(video.VideoType),
			video.WatchURL(),
			string(video.Status),
			video.PostedBy(),
			subCategory,
			fmt.Sprintf("%d", video.ViewCounter),
			video.VideoDate.UTC().Format(sitemapTimeLayout),
			video.UpdatedAt.UTC().Format(sitemapTimeLayout),
		})
	})
	if err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
