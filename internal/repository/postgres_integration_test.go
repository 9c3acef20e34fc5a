//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/favorite-plug/api/internal/constants"
	"github.com/favorite-plug/api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.CartItem{},
		&models.Cart{},
		&models.WishlistItem{},
		&models.ProductImage{},
		&models.Product{},
		&models.UserDetail{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserDetail{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresProductSearchUsesILike(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)

	product := &models.Product{
		Name:     "Rocket Booster",
		Category: "vapes",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(99)),
		IsActive: true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	rows, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, Search: "rocket"})
	if err != nil {
		t.Fatalf("case-insensitive search failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("search want 1 got total=%d len=%d", total, len(rows))
	}
}

func TestPostgresOrderLifecycle(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	orderRepo := NewOrderRepository(db)
	cartRepo := NewCartRepository(db)

	user := &models.User{Email: "pg-buyer@example.com", PasswordHash: "x", Role: constants.RoleUser}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	cart, err := cartRepo.GetOrCreateByUser(user.ID)
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	if err := cartRepo.SaveItem(&models.CartItem{CartID: cart.ID, ProductID: 1, Quantity: 2}); err != nil {
		t.Fatalf("save cart item failed: %v", err)
	}

	order := &models.Order{
		OrderNo:         "PG-ORDER-001",
		UserID:          user.ID,
		Status:          constants.OrderStatusPending,
		TotalAmount:     models.NewMoneyFromDecimal(decimal.NewFromInt(200)),
		ShippingAddress: "1 Integration Way",
		ContactPhone:    "07000000001",
		CustomerName:    "PG Buyer",
		PaymentMethod:   "card",
	}
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
	}
	if err := orderRepo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := cartRepo.ClearItems(cart.ID); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}

	got, err := orderRepo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if got == nil || len(got.Items) != 1 {
		t.Fatalf("order should have 1 item, got %+v", got)
	}
	if got.User == nil || got.User.Email != "pg-buyer@example.com" {
		t.Fatalf("order should preload purchaser")
	}

	affected, err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil || affected != 1 {
		t.Fatalf("update status failed: affected=%d err=%v", affected, err)
	}
}
