package service

import (
	"errors"
	"testing"

	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Cart{}, &models.CartItem{}, &models.Product{}, &models.ProductImage{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func createCartTestProduct(t *testing.T, db *gorm.DB, name string, active bool) uint {
	t.Helper()
	product := models.Product{
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(10.00)),
		IsActive: active,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product.ID
}

func TestCartGetWithoutCartReturnsEmptyWithoutPersisting(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	cart, err := svc.Get(8001)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart == nil || len(cart.Items) != 0 {
		t.Fatalf("want empty cart, got %+v", cart)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", 8001).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("reading the cart must not create a row, got %d", count)
	}
}

func TestCartAddItemAccumulatesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	productID := createCartTestProduct(t, db, "cart accumulate mug", true)

	if _, err := svc.AddItem(8002, productID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	cart, err := svc.AddItem(8002, productID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("same product must stay one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddItemRejectsBadInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	activeID := createCartTestProduct(t, db, "cart reject active pen", true)
	inactiveID := createCartTestProduct(t, db, "cart reject retired pen", false)

	if _, err := svc.AddItem(8003, activeID, 0); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("zero quantity: want ErrQuantityInvalid got %v", err)
	}
	if _, err := svc.AddItem(8003, 999999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product: want ErrProductNotFound got %v", err)
	}
	if _, err := svc.AddItem(8003, inactiveID, 1); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("inactive product: want ErrProductInactive got %v", err)
	}
}

func TestCartUpdateItemOverwritesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	productID := createCartTestProduct(t, db, "cart overwrite lamp", true)

	if _, err := svc.AddItem(8004, productID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart, err := svc.UpdateItem(8004, productID, 7)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if cart.Items[0].Quantity != 7 {
		t.Fatalf("quantity want 7 got %d", cart.Items[0].Quantity)
	}

	if _, err := svc.UpdateItem(8004, 999999, 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("missing line: want ErrCartItemNotFound got %v", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	first := createCartTestProduct(t, db, "cart remove first", true)
	second := createCartTestProduct(t, db, "cart remove second", true)

	if _, err := svc.AddItem(8005, first, 1); err != nil {
		t.Fatalf("add first failed: %v", err)
	}
	if _, err := svc.AddItem(8005, second, 1); err != nil {
		t.Fatalf("add second failed: %v", err)
	}

	cart, err := svc.RemoveItem(8005, first)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(cart.Items))
	}

	if err := svc.Clear(8005); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	cart, err = svc.Get(8005)
	if err != nil {
		t.Fatalf("get after clear failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart should be empty after clear, got %d items", len(cart.Items))
	}

	// clearing a user without a cart is a no-op
	if err := svc.Clear(8006); err != nil {
		t.Fatalf("clear without cart failed: %v", err)
	}
}
