package models

type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "active"
	CategoryInactive CategoryStatus = "inactive"
)

type Category struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Name          string         `json:"name" gorm:"uniqueIndex;not null"`
	Slug          string         `json:"slug" gorm:"uniqueIndex;not null"`
	Status        CategoryStatus `json:"status" gorm:"default:'active'"`
	Order         int            `json:"order"`
	SubCategories []SubCategory  `json:"sub_categories,omitempty" gorm:"foreignKey:CategoryID"`
}

type SubCategory struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	CategoryID uint           `json:"category_id" gorm:"not null"`
	Category   *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name       string         `json:"name" gorm:"uniqueIndex;not null"`
	Slug       string         `json:"slug" gorm:"uniqueIndex;not null"`
	Tag        string         `json:"tag" gorm:"default:'#trending #latest'"`
	Status     CategoryStatus `json:"status" gorm:"default:'active'"`
	Order      int            `json:"order"`
}
