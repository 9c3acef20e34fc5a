package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed order. Every field except Status is immutable after
// creation; shipping fields and prices are snapshots taken at placement.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`
	UserID          uint           `gorm:"index;not null" json:"user_id"`
	Status          string         `gorm:"index;not null" json:"status"`
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	ShippingAddress string         `gorm:"type:varchar(500);not null" json:"shipping_address"`
	ContactPhone    string         `gorm:"type:varchar(40);not null" json:"contact_phone"`
	CustomerName    string         `gorm:"type:varchar(120);not null" json:"customer_name"`
	PaymentMethod   string         `gorm:"type:varchar(40);not null" json:"payment_method"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
