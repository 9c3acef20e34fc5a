package service

import (
	"context"
	"time"

	"github.com/favorite-plug/api/internal/cache"
	"github.com/favorite-plug/api/internal/repository"
)

const dashboardCacheTTL = 45 * time.Second

// DashboardService aggregates the admin home-page figures.
type DashboardService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(userRepo repository.UserRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	Users        int64  `json:"users"`
	NewUsers30d  int64  `json:"new_users_30d"`
	Products     int64  `json:"products"`
	Orders       int64  `json:"orders"`
	TotalRevenue string `json:"total_revenue"`
}

const dashboardStatsCacheKey = "dashboard:stats"

// GetStats returns the overview counters, cached briefly so a busy admin
// page does not hammer the database.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if hit, err := cache.GetJSON(ctx, dashboardStatsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	users, err := s.userRepo.CountAll()
	if err != nil {
		return nil, err
	}
	newUsers, err := s.userRepo.CountCreatedSince(time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.CountAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.CountAll()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumTotalAmount()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		Users:        users,
		NewUsers30d:  newUsers,
		Products:     products,
		Orders:       orders,
		TotalRevenue: revenue.String(),
	}
	_ = cache.SetJSON(ctx, dashboardStatsCacheKey, stats, dashboardCacheTTL)
	return stats, nil
}
