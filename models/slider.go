package models

import "time"

type SliderStatus string

const (
	SliderActive   SliderStatus = "active"
	SliderInactive SliderStatus = "inactive"
)

// Slider is a staff-curated homepage carousel entry. Lower display
// order renders first.
type Slider struct {
	ID            uint         `json:"id" gorm:"primarykey"`
	SubCategoryID *uint        `json:"sub_category_id"`
	SubCategory   *SubCategory `json:"sub_category,omitempty" gorm:"foreignKey:SubCategoryID"`
	Title         string       `json:"title" gorm:"size:200"`
	Description   string       `json:"description" gorm:"size:300"`
	Image         string       `json:"image" gorm:"size:255"`
	Slug          string       `json:"slug" gorm:"size:200;uniqueIndex"`
	DisplayOrder  int          `json:"order" gorm:"column:display_order;default:5"`
	Status        SliderStatus `json:"status" gorm:"default:'active'"`
	AuthorID      uint         `json:"author_id"`
	Author        *User        `json:"-" gorm:"foreignKey:AuthorID"`
	PostDate      time.Time    `json:"post_date" gorm:"autoCreateTime"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
