package models

import (
	"time"
)

type ContentStatus string

const (
	ContentActive   ContentStatus = "active"
	ContentInactive ContentStatus = "inactive"
	ContentRejected ContentStatus = "rejected"
)

// NewsPost is a written news item. Moderation status is independent of
// the promotion flags: a post can be trending and breaking at once, and
// neither implies it is publicly visible.
type NewsPost struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	SubCategoryID *uint         `json:"sub_category_id"`
	SubCategory   *SubCategory  `json:"sub_category,omitempty" gorm:"foreignKey:SubCategoryID"`
	Title         string        `json:"title" gorm:"not null"`
	ShortDesc     string        `json:"short_desc"`
	Body          string        `json:"body" gorm:"type:text"`
	Image         string        `json:"image"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	Tag           string        `json:"tag" gorm:"default:'#trending #latest'"`
	Latest        bool          `json:"latest" gorm:"default:true"`
	Headline      bool          `json:"headline" gorm:"default:false"`
	Article       bool          `json:"article" gorm:"default:false"`
	Trending      bool          `json:"trending" gorm:"default:false"`
	BreakingNews  bool          `json:"breaking_news" gorm:"default:false"`
	Event         bool          `json:"event" gorm:"default:false"`
	EventDate     time.Time     `json:"event_date"`
	EventEndDate  time.Time     `json:"event_end_date"`
	ScheduleDate  time.Time     `json:"schedule_date"`
	PostDate      time.Time     `json:"post_date" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ViewCounter   int           `json:"view_counter"`
	Counter       int           `json:"counter" gorm:"default:100"`
	Order         int           `json:"order" gorm:"default:5"`
	Status        ContentStatus `json:"status" gorm:"default:'active'"`
	AuthorID      *uint         `json:"author_id"`
	Author        *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	JournalistID  *uint         `json:"journalist_id"`
	Journalist    *Journalist   `json:"journalist,omitempty" gorm:"foreignKey:JournalistID"`
}

func (p *NewsPost) SetOwner(o Owner) {
	p.AuthorID = o.AuthorID
	p.JournalistID = o.JournalistID
}

// Validate enforces the author-XOR-journalist ownership invariant. It is
// a precondition check run before persistence, not a correction.
func (p *NewsPost) Validate() error {
	return validateOwnership(p.AuthorID, p.JournalistID)
}

func (p *NewsPost) PostedBy() string {
	if p.Journalist != nil {
		return p.Journalist.Username
	}
	if p.Author != nil {
		return p.Author.Username
	}
	return "Unknown"
}

// AbsoluteURL is the stable public path consumed by sitemaps.
func (p *NewsPost) AbsoluteURL() string {
	return "/" + p.Slug
}
