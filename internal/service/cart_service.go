package service

import (
	"time"

	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"
)

// CartService handles the per-user shopping cart. The cart row itself is
// created on the first write, never on reads.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Get returns the user's cart with items. A user without a cart gets an
// empty one back without a row being written.
func (s *CartService) Get(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return cart, nil
}

// AddItem puts a product into the cart. Adding a product already present
// accumulates the quantity on the existing line.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if item == nil {
		item = &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		item.Quantity += quantity
		item.UpdatedAt = now
	}
	if err := s.cartRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// UpdateItem overwrites the quantity of a cart line.
func (s *CartService) UpdateItem(userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	item, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := s.cartRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// RemoveItem drops one product line from the cart.
func (s *CartService) RemoveItem(userID, productID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	item, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if err := s.cartRepo.DeleteItem(cart.ID, productID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Clear empties the cart. Clearing a cart that never existed is a no-op.
func (s *CartService) Clear(userID uint) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.cartRepo.ClearItems(cart.ID)
}
