package models

import (
	"time"
)

// NewsRedirect preserves SEO value for deleted or moved posts by mapping
// an old slug to a live one.
type NewsRedirect struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	OldSlug      string    `json:"old_slug" gorm:"uniqueIndex;not null"`
	RedirectSlug string    `json:"redirect_slug" gorm:"index;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *NewsRedirect) Validate() error {
	if r.OldSlug == r.RedirectSlug {
		return ErrorValidation{Message: "old slug and redirect slug cannot be the same"}
	}
	return nil
}
