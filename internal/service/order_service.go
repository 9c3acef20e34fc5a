package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/favorite-plug/api/internal/constants"
	"github.com/favorite-plug/api/internal/logger"
	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/queue"
	"github.com/favorite-plug/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService handles order placement and the order lifecycle.
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
	notifier    *OrderNotificationService
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, queueClient *queue.Client, notifier *OrderNotificationService) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
		notifier:    notifier,
	}
}

// PlaceOrderInput is the checkout payload. All four fields are required.
type PlaceOrderInput struct {
	ShippingAddress string
	ContactPhone    string
	CustomerName    string
	PaymentMethod   string
}

// PlaceOrder converts the user's cart into an order. The cart is re-read
// inside the transaction, so two concurrent checkouts of one cart cannot
// both succeed: whoever commits second finds the cart already emptied.
func (s *OrderService) PlaceOrder(userID uint, input PlaceOrderInput) (*models.Order, error) {
	shippingAddress := strings.TrimSpace(input.ShippingAddress)
	contactPhone := strings.TrimSpace(input.ContactPhone)
	customerName := strings.TrimSpace(input.CustomerName)
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if shippingAddress == "" {
		return nil, NewFieldError("shipping_address", "shipping address is required")
	}
	if contactPhone == "" {
		return nil, NewFieldError("contact_phone", "contact phone is required")
	}
	if customerName == "" {
		return nil, NewFieldError("customer_name", "customer name is required")
	}
	if paymentMethod == "" {
		return nil, NewFieldError("payment_method", "payment method is required")
	}

	var created *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		cart, err := cartRepo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartEmpty
		}
		cartItems, err := cartRepo.ListItems(cart.ID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		now := time.Now()
		for _, cartItem := range cartItems {
			if cartItem.Product == nil {
				return ErrProductNotFound
			}
			unitPrice := cartItem.Product.Price
			total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(cartItem.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
				UnitPrice: unitPrice,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		order := &models.Order{
			OrderNo:         generateOrderNo(),
			UserID:          userID,
			Status:          constants.OrderStatusPending,
			TotalAmount:     models.NewMoneyFromDecimal(total),
			ShippingAddress: shippingAddress,
			ContactPhone:    contactPhone,
			CustomerName:    customerName,
			PaymentMethod:   paymentMethod,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		if err := cartRepo.ClearItems(cart.ID); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCartEmpty) || errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		logger.Errorw("order_place_failed", "user_id", userID, "error", err)
		return nil, ErrOrderCreateFailed
	}

	s.notifyOrderPlaced(created.ID)

	return s.orderRepo.GetByID(created.ID)
}

// notifyOrderPlaced fans out placement notifications after commit. The
// order exists no matter what happens here, so failures only get logged.
func (s *OrderService) notifyOrderPlaced(orderID uint) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueOrderPlacedEmail(queue.OrderPlacedEmailPayload{OrderID: orderID})
		if err == nil {
			return
		}
		logger.Warnw("order_placed_enqueue_failed", "order_id", orderID, "error", err)
	}
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyOrderPlaced(orderID); err != nil {
		logger.Warnw("order_placed_notify_failed", "order_id", orderID, "error", err)
	}
}

// ListByUser returns the user's orders, newest first.
func (s *OrderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetForUser returns one of the user's own orders or ErrOrderNotFound.
func (s *OrderService) GetForUser(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin returns all orders, newest first, with purchaser info.
func (s *OrderService) ListAdmin(status string, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.ToUpper(strings.TrimSpace(status)),
	})
}

// GetAdmin returns any order or ErrOrderNotFound.
func (s *OrderService) GetAdmin(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// SetStatus overwrites the order status. Any known status can follow any
// other; there is no transition graph.
func (s *OrderService) SetStatus(id uint, status string) (*models.Order, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !constants.IsOrderStatus(status) {
		return nil, ErrOrderStatusInvalid
	}

	affected, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}
	return s.GetAdmin(id)
}

func generateOrderNo() string {
	return fmt.Sprintf("FP%s%s", time.Now().Format("20060102150405"), randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
