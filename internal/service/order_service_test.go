package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/favorite-plug/api/internal/config"
	"github.com/favorite-plug/api/internal/constants"
	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserDetail{},
		&models.EmailVerifyCode{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	models.DB = db
	return db
}

func newOrderTestService(db *gorm.DB) (*OrderService, repository.CartRepository) {
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	return NewOrderService(orderRepo, cartRepo, nil, nil), cartRepo
}

func seedCheckoutCart(t *testing.T, db *gorm.DB, userID uint, prices map[string]struct {
	Price    float64
	Quantity int
}) uint {
	t.Helper()
	cartRepo := repository.NewCartRepository(db)
	cart, err := cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	for name, line := range prices {
		product := models.Product{
			Name:     name,
			Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(line.Price)),
			IsActive: true,
		}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
		if err := cartRepo.SaveItem(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: line.Quantity}); err != nil {
			t.Fatalf("save cart item failed: %v", err)
		}
	}
	return cart.ID
}

func validCheckoutInput() PlaceOrderInput {
	return PlaceOrderInput{
		ShippingAddress: "12 Harbour Street, Kingston",
		ContactPhone:    "+1876000000",
		CustomerName:    "Dana Brown",
		PaymentMethod:   "cash_on_delivery",
	}
}

func TestPlaceOrderComputesTotalAndClearsCart(t *testing.T) {
	db := setupServiceTestDB(t)
	svc, cartRepo := newOrderTestService(db)

	const userID = 7001
	cartID := seedCheckoutCart(t, db, userID, map[string]struct {
		Price    float64
		Quantity int
	}{
		"checkout total earphones": {Price: 19.90, Quantity: 2},
		"checkout total bottle":    {Price: 5.00, Quantity: 1},
	})

	order, err := svc.PlaceOrder(userID, validCheckoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want PENDING got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "FP") {
		t.Fatalf("order no should carry the FP prefix, got %s", order.OrderNo)
	}
	if order.TotalAmount.String() != "44.80" {
		t.Fatalf("total want 44.80 got %s", order.TotalAmount.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items want 2 got %d", len(order.Items))
	}

	items, err := cartRepo.ListItems(cartID)
	if err != nil {
		t.Fatalf("list cart items failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d items", len(items))
	}
}

func TestPlaceOrderSnapshotsUnitPrice(t *testing.T) {
	db := setupServiceTestDB(t)
	svc, _ := newOrderTestService(db)

	const userID = 7002
	seedCheckoutCart(t, db, userID, map[string]struct {
		Price    float64
		Quantity int
	}{
		"snapshot priced keyboard": {Price: 149.00, Quantity: 1},
	})

	order, err := svc.PlaceOrder(userID, validCheckoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// a later price change must not rewrite what the buyer paid
	productID := order.Items[0].ProductID
	if err := db.Model(&models.Product{}).Where("id = ?", productID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromFloat(999.00))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	reloaded, err := svc.GetAdmin(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.Items[0].UnitPrice.String() != "149.00" {
		t.Fatalf("unit price want 149.00 got %s", reloaded.Items[0].UnitPrice.String())
	}
}

func TestPlaceOrderValidatesRequiredFields(t *testing.T) {
	db := setupServiceTestDB(t)
	svc, _ := newOrderTestService(db)

	cases := []struct {
		name   string
		mutate func(*PlaceOrderInput)
		field  string
	}{
		{name: "shipping address", mutate: func(in *PlaceOrderInput) { in.ShippingAddress = "  " }, field: "shipping_address"},
		{name: "contact phone", mutate: func(in *PlaceOrderInput) { in.ContactPhone = "" }, field: "contact_phone"},
		{name: "customer name", mutate: func(in *PlaceOrderInput) { in.CustomerName = "" }, field: "customer_name"},
		{name: "payment method", mutate: func(in *PlaceOrderInput) { in.PaymentMethod = "" }, field: "payment_method"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCheckoutInput()
			tc.mutate(&input)
			_, err := svc.PlaceOrder(7003, input)
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("want FieldError got %v", err)
			}
			if fieldErr.Field != tc.field {
				t.Fatalf("field want %s got %s", tc.field, fieldErr.Field)
			}
		})
	}

	var count int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", 7003).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no order should exist after validation failures, got %d", count)
	}
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db := setupServiceTestDB(t)
	svc, _ := newOrderTestService(db)

	// no cart at all
	if _, err := svc.PlaceOrder(7004, validCheckoutInput()); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("missing cart: want ErrCartEmpty got %v", err)
	}

	// cart exists but holds nothing
	cartRepo := repository.NewCartRepository(db)
	if _, err := cartRepo.GetOrCreateByUser(7005); err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	if _, err := svc.PlaceOrder(7005, validCheckoutInput()); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty cart: want ErrCartEmpty got %v", err)
	}
}

func TestPlaceOrderSecondCheckoutFindsEmptyCart(t *testing.T) {
	db := setupServiceTestDB(t)
	svc, _ := newOrderTestService(db)

	const userID = 7006
	seedCheckoutCart(t, db, userID, map[string]struct {
		Price    float64
		Quantity int
	}{
		"double checkout cable": {Price: 12.99, Quantity: 3},
	})

	if _, err := svc.PlaceOrder(userID, validCheckoutInput()); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	if _, err := svc.PlaceOrder(userID, validCheckoutInput()); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("second checkout: want ErrCartEmpty got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("orders want 1 got %d", count)
	}
}

type failingOrderRepository struct {
	repository.OrderRepository
}

func (r *failingOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	return errors.New("insert rejected")
}

func (r *failingOrderRepository) WithTx(tx *gorm.DB) repository.OrderRepository {
	return r
}

func TestPlaceOrderRollsBackOnInsertFailure(t *testing.T) {
	db := setupServiceTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := &failingOrderRepository{OrderRepository: repository.NewOrderRepository(db)}
	svc := NewOrderService(orderRepo, cartRepo, nil, nil)

	const userID = 7007
	cartID := seedCheckoutCart(t, db, userID, map[string]struct {
		Price    float64
		Quantity int
	}{
		"rollback guarded watch": {Price: 199.00, Quantity: 1},
	})

	if _, err := svc.PlaceOrder(userID, validCheckoutInput()); !errors.Is(err, ErrOrderCreateFailed) {
		t.Fatalf("want ErrOrderCreateFailed got %v", err)
	}

	items, err := cartRepo.ListItems(cartID)
	if err != nil {
		t.Fatalf("list cart items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart must survive a failed checkout, got %d items", len(items))
	}
}

func TestPlaceOrderSucceedsWhenNotificationFails(t *testing.T) {
	db := setupServiceTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	// sending is disabled, so every notification attempt fails
	notifier := NewOrderNotificationService(orderRepo, userRepo, NewEmailService(&config.EmailConfig{Enabled: false}))
	svc := NewOrderService(orderRepo, cartRepo, nil, notifier)

	const userID = 7008
	seedCheckoutCart(t, db, userID, map[string]struct {
		Price    float64
		Quantity int
	}{
		"notify failure bottle": {Price: 24.50, Quantity: 2},
	})

	order, err := svc.PlaceOrder(userID, validCheckoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order == nil || order.ID == 0 {
		t.Fatalf("order should be persisted despite notification failure")
	}
}

func TestSetStatusOverwritesWithoutTransitionRules(t *testing.T) {
	db := setupServiceTestDB(t)
	svc, _ := newOrderTestService(db)

	const userID = 7009
	seedCheckoutCart(t, db, userID, map[string]struct {
		Price    float64
		Quantity int
	}{
		"status cycled earphones": {Price: 99.99, Quantity: 1},
	})
	order, err := svc.PlaceOrder(userID, validCheckoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// any known status may follow any other, including going backwards
	for _, status := range []string{"DELIVERED", "pending", "CANCELLED", "shipped"} {
		updated, err := svc.SetStatus(order.ID, status)
		if err != nil {
			t.Fatalf("set status %s failed: %v", status, err)
		}
		if updated.Status != strings.ToUpper(status) {
			t.Fatalf("status want %s got %s", strings.ToUpper(status), updated.Status)
		}
	}

	if _, err := svc.SetStatus(order.ID, "REFUNDED"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("unknown status: want ErrOrderStatusInvalid got %v", err)
	}
	if _, err := svc.SetStatus(999999, "SHIPPED"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order: want ErrOrderNotFound got %v", err)
	}
}
