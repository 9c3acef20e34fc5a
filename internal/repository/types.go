package repository

import "time"

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	Page       int
	PageSize   int
	Category   string
	Search     string
	OnlyActive bool
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter narrows user listings.
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Blocked  *bool
}
