package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the single account table; admins are users with the admin role.
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	Role               string         `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	Blocked            bool           `gorm:"not null;default:false" json:"blocked"`
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`
	EmailVerifiedAt    *time.Time     `json:"email_verified_at"`
	LastLoginAt        *time.Time     `json:"last_login_at"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	Detail *UserDetail `gorm:"foreignKey:UserID" json:"detail,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// IsVerified reports whether the email has been verified.
func (u *User) IsVerified() bool {
	return u.EmailVerifiedAt != nil
}
