package service

import (
	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"
)

// WishlistService handles the per-user wishlist.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates the wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

// List returns the user's saved products, newest first.
func (s *WishlistService) List(userID uint) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(userID)
}

// Add saves a product. Saving it twice is a conflict, not an upsert.
func (s *WishlistService) Add(userID, productID uint) (*models.WishlistItem, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}

	exist, err := s.wishlistRepo.Get(userID, productID)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrWishlistDuplicate
	}

	item := &models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// Remove drops a saved product.
func (s *WishlistService) Remove(userID, productID uint) error {
	affected, err := s.wishlistRepo.Delete(userID, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWishlistNotFound
	}
	return nil
}
