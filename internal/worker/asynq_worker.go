package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/favorite-plug/api/internal/logger"
	"github.com/favorite-plug/api/internal/provider"
	"github.com/favorite-plug/api/internal/queue"
	"github.com/favorite-plug/api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlacedEmail, c.handleOrderPlacedEmail)
	mux.HandleFunc(queue.TaskWelcomeEmail, c.handleWelcomeEmail)
}

func (c *Consumer) handleOrderPlacedEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.OrderNotificationService == nil {
		logger.Warnw("worker_order_placed_email_skip_notifier_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.OrderNotificationService.NotifyOrderPlaced(payload.OrderID); err != nil {
		logger.Warnw("worker_order_placed_email_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleWelcomeEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_welcome_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.WelcomeEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_welcome_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.Email == "" {
		logger.Debugw("worker_welcome_email_skip_empty_email")
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_welcome_email_skip_email_service_nil", "email", payload.Email)
		return nil
	}
	if err := c.EmailService.SendWelcomeEmail(payload.Email); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) {
			logger.Debugw("worker_welcome_email_skip_disabled", "email", payload.Email)
			return nil
		}
		logger.Warnw("worker_welcome_email_send_failed", "email", payload.Email, "error", err)
		return err
	}
	return nil
}
