package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one product line of an order. UnitPrice is the product price
// at placement time; later catalog changes never touch it.
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"index;not null" json:"order_id"`
	ProductID uint           `gorm:"index;not null" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
