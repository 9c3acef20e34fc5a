package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductImage is one stored image of a product.
type ProductImage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ProductID uint           `gorm:"index;not null" json:"product_id"`
	URL       string         `gorm:"type:varchar(500);not null" json:"url"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (ProductImage) TableName() string {
	return "product_images"
}
