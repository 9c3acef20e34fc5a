package models

import (
	"time"

	"gorm.io/gorm"
)

// UserDetail is the one-per-user shipping profile.
type UserDetail struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName  string         `gorm:"type:varchar(120)" json:"full_name"`
	Address   string         `gorm:"type:varchar(500)" json:"address"`
	Phone     string         `gorm:"type:varchar(40)" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (UserDetail) TableName() string {
	return "user_details"
}
