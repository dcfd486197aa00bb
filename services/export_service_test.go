package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"armust-news-cms/mocks"
	"armust-news-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamNewsCSV(t *testing.T) {
	posted := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	journalist := &models.Journalist{Username: "DANA4821"}
	newsRepo := &mocks.NewsRepository{
		StreamAllFn: func(fn func(post *models.NewsPost) error) error {
			return fn(&models.NewsPost{
				ID:          12,
				Title:       "Harbour Expansion Approved",
				Slug:        "harbour-expansion-approved",
				Status:      models.ContentActive,
				Journalist:  journalist,
				SubCategory: &models.SubCategory{Name: "Infrastructure"},
				Headline:    true,
				ViewCounter: 42,
				PostDate:    posted,
				UpdatedAt:   posted,
			})
		},
	}
	svc := NewExportService(newsRepo, &mocks.VideoRepository{})

	var buf bytes.Buffer
	require.NoError(t, svc.StreamNewsCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "12", records[1][0])
	assert.Equal(t, "DANA4821", records[1][4])
	assert.Equal(t, "Infrastructure", records[1][5])
	assert.Equal(t, "yes", records[1][7])
	assert.Equal(t, "2026-08-01T10:00:00Z", records[1][13])
}

func TestStreamVideoCSVReconstructsWatchLink(t *testing.T) {
	videoRepo := &mocks.VideoRepository{
		StreamAllFn: func(fn func(video *models.VideoNews) error) error {
			if err := fn(&models.VideoNews{
				ID:        1,
				Title:     "Studio Tour",
				Slug:      "studio-tour",
				VideoType: models.VideoTypeVideo,
				VideoURL:  "dQw4w9WgXcQ",
				Status:    models.ContentActive,
			}); err != nil {
				return err
			}
			return fn(&models.VideoNews{
				ID:        2,
				Title:     "Quick Cut",
				Slug:      "quick-cut",
				VideoType: models.VideoTypeReel,
				VideoURL:  "abc123",
				Status:    models.ContentInactive,
			})
		},
	}
	svc := NewExportService(&mocks.NewsRepository{}, videoRepo)

	var buf bytes.Buffer
	require.NoError(t, svc.StreamVideoCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", records[1][4])
	assert.Equal(t, "https://www.youtube.com/shorts/abc123", records[2][4])
}
