package models

import (
	"time"
)

type VideoType string

const (
	VideoTypeVideo VideoType = "video"
	VideoTypeReel  VideoType = "reel"
)

// VideoNews is the video variant of a content item. The moderation
// column is named is_active for historical reasons but carries the same
// three-value domain as NewsPost.Status.
type VideoNews struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	SubCategoryID *uint         `json:"sub_category_id"`
	SubCategory   *SubCategory  `json:"sub_category,omitempty" gorm:"foreignKey:SubCategoryID"`
	VideoType     VideoType     `json:"video_type" gorm:"default:'video'"`
	Title         string        `json:"title" gorm:"not null"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	ShortDesc     string        `json:"short_desc"`
	Body          string        `json:"body" gorm:"type:text"`
	VideoURL      string        `json:"video_url"`
	Thumbnail     string        `json:"thumbnail" gorm:"default:'thumbnail/na.jpg'"`
	Tag           string        `json:"tag"`
	ScheduleDate  time.Time     `json:"schedule_date"`
	VideoDate     time.Time     `json:"video_date" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ViewCounter   int           `json:"view_counter"`
	Counter       int           `json:"counter"`
	Order         int           `json:"order" gorm:"default:5"`
	Headline      bool          `json:"headline" gorm:"default:false"`
	Article       bool          `json:"article" gorm:"default:false"`
	Trending      bool          `json:"trending" gorm:"default:false"`
	BreakingNews  bool          `json:"breaking_news" gorm:"default:false"`
	Status        ContentStatus `json:"status" gorm:"column:is_active;default:'active'"`
	AuthorID      *uint         `json:"author_id"`
	Author        *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	JournalistID  *uint         `json:"journalist_id"`
	Journalist    *Journalist   `json:"journalist,omitempty" gorm:"foreignKey:JournalistID"`
}

func (v *VideoNews) SetOwner(o Owner) {
	v.AuthorID = o.AuthorID
	v.JournalistID = o.JournalistID
}

func (v *VideoNews) Validate() error {
	return validateOwnership(v.AuthorID, v.JournalistID)
}

func (v *VideoNews) PostedBy() string {
	if v.Journalist != nil {
		return v.Journalist.Username
	}
	if v.Author != nil {
		return v.Author.Username
	}
	return "Unknown"
}

func (v *VideoNews) AbsoluteURL() string {
	return "/video/" + v.Slug
}

// WatchURL reconstructs the external video link from the stored id.
func (v *VideoNews) WatchURL() string {
	switch v.VideoType {
	case VideoTypeVideo:
		return "https://www.youtube.com/watch?v=" + v.VideoURL
	case VideoTypeReel:
		return "https://www.youtube.com/shorts/" + v.VideoURL
	}
	return v.VideoURL
}
