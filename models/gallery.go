package models

import (
	"time"
)

type GalleryStatus string

const (
	GalleryActive   GalleryStatus = "active"
	GalleryInactive GalleryStatus = "inactive"
)

// Gallery is a portfolio image owned by one account. Rows are never
// deleted; removal flips the status to inactive, and only active rows
// count against the account's gallery_post_limit.
type Gallery struct {
	ID           uint          `json:"id" gorm:"primarykey"`
	JournalistID uint          `json:"journalist_id" gorm:"not null;index"`
	Journalist   *Journalist   `json:"-" gorm:"foreignKey:JournalistID"`
	Image        string        `json:"image"`
	Status       GalleryStatus `json:"status" gorm:"default:'inactive'"`
	PostAt       time.Time     `json:"post_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
