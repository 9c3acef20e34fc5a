package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is the catalog entry. Quantity is an informational stock figure;
// order placement does not decrement it.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(200);not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	OldPrice    *Money         `gorm:"type:decimal(20,2)" json:"old_price,omitempty"`
	Quantity    int            `gorm:"not null;default:0" json:"quantity"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
