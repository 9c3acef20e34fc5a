package repository

import (
	"errors"
	"time"

	"github.com/favorite-plug/api/internal/constants"
	"github.com/favorite-plug/api/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the user data access interface.
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByIDWithDetail(id uint) (*models.User, error)
	ListAdmins() ([]models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	SetBlocked(id uint, blocked bool) error
	UpsertDetail(detail *models.UserDetail) error
	List(filter UserListFilter) ([]models.User, int64, error)
	CountAll() (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
}

// GormUserRepository is the GORM implementation.
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a user repository.
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByEmail returns the user for an email, nil when absent.
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user for an id, nil when absent.
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByIDWithDetail returns the user with the profile row preloaded.
func (r *GormUserRepository) GetByIDWithDetail(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Detail").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ListAdmins returns every non-blocked admin account.
func (r *GormUserRepository) ListAdmins() ([]models.User, error) {
	var admins []models.User
	if err := r.db.Where("role = ? AND blocked = ?", constants.RoleAdmin, false).
		Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// Create inserts a user.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update saves a user.
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetBlocked flips the blocked flag. Blocking also invalidates every
// outstanding token.
func (r *GormUserRepository) SetBlocked(id uint, blocked bool) error {
	now := time.Now()
	updates := map[string]interface{}{
		"blocked":    blocked,
		"updated_at": now,
	}
	if blocked {
		updates["token_invalid_before"] = now
		updates["token_version"] = gorm.Expr("token_version + 1")
	}
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// UpsertDetail creates or updates the one-per-user profile row.
func (r *GormUserRepository) UpsertDetail(detail *models.UserDetail) error {
	if detail == nil {
		return nil
	}
	var existing models.UserDetail
	err := r.db.Where("user_id = ?", detail.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(detail).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"full_name": detail.FullName,
		"address":   detail.Address,
		"phone":     detail.Phone,
	}
	return r.db.Model(&existing).Updates(updates).Error
}

// List returns a page of users.
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("email "+likeOperator(r.db)+" ?", like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Blocked != nil {
		query = query.Where("blocked = ?", *filter.Blocked)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var users []models.User
	if err := query.Preload("Detail").Order("id DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// CountAll counts every account.
func (r *GormUserRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Count(&total).Error
	return total, err
}

// CountCreatedSince counts accounts created at or after the given time.
func (r *GormUserRepository) CountCreatedSince(since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Where("created_at >= ?", since).Count(&total).Error
	return total, err
}
