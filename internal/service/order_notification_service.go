package service

import (
	"fmt"

	"github.com/favorite-plug/api/internal/logger"
	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"
)

// OrderNotificationService fans out order-placed emails to every active
// admin and to the purchaser. Each send stands on its own: one rejected
// mailbox never blocks the others.
type OrderNotificationService struct {
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	emailService *EmailService
}

// NewOrderNotificationService creates the notification service.
func NewOrderNotificationService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, emailService *EmailService) *OrderNotificationService {
	return &OrderNotificationService{
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// NotifyOrderPlaced sends the admin fan-out and the customer confirmation
// for one order. Only a failed order lookup is reported back, so a queue
// consumer can retry it; send failures are logged and dropped.
func (s *OrderNotificationService) NotifyOrderPlaced(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %d not found", orderID)
	}

	input := buildOrderPlacedEmailInput(order)

	admins, err := s.userRepo.ListAdmins()
	if err != nil {
		logger.Warnw("order_placed_admin_lookup_failed", "order_id", orderID, "error", err)
	}
	for _, admin := range admins {
		if err := s.emailService.SendOrderPlacedAdminEmail(admin.Email, input); err != nil {
			logger.Warnw("order_placed_admin_email_failed",
				"order_id", orderID,
				"admin_id", admin.ID,
				"error", err,
			)
		}
	}

	if order.User != nil && order.User.Email != "" {
		if err := s.emailService.SendOrderPlacedCustomerEmail(order.User.Email, input); err != nil {
			logger.Warnw("order_placed_customer_email_failed",
				"order_id", orderID,
				"user_id", order.UserID,
				"error", err,
			)
		}
	}

	return nil
}

func buildOrderPlacedEmailInput(order *models.Order) OrderPlacedEmailInput {
	input := OrderPlacedEmailInput{
		OrderNo:         order.OrderNo,
		CustomerName:    order.CustomerName,
		TotalAmount:     order.TotalAmount,
		ItemCount:       len(order.Items),
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
	}
	if order.User != nil {
		input.CustomerEmail = order.User.Email
	}
	return input
}
