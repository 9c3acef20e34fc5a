package service

import (
	"context"

	"github.com/favorite-plug/api/internal/cache"
	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"
)

// UserAdminService handles admin-side user management.
type UserAdminService struct {
	userRepo repository.UserRepository
}

// NewUserAdminService creates the user admin service.
func NewUserAdminService(userRepo repository.UserRepository) *UserAdminService {
	return &UserAdminService{userRepo: userRepo}
}

// List returns users matching the filter, newest first.
func (s *UserAdminService) List(keyword, role string, blocked *bool, page, pageSize int) ([]models.User, int64, error) {
	return s.userRepo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  keyword,
		Role:     role,
		Blocked:  blocked,
	})
}

// Get returns one user with the shipping profile, or ErrNotFound.
func (s *UserAdminService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithDetail(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// SetBlocked blocks or unblocks an account. Blocking also invalidates all
// outstanding tokens. An admin cannot block their own account.
func (s *UserAdminService) SetBlocked(actorID, id uint, blocked bool) (*models.User, error) {
	if blocked && actorID == id {
		return nil, ErrSelfBlock
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := s.userRepo.SetBlocked(id, blocked); err != nil {
		return nil, err
	}

	user, err = s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	_ = cache.DelUserAuthState(context.Background(), id)
	return user, nil
}
