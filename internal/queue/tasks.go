package queue

import (
	"encoding/json"

	"github.com/favorite-plug/api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlacedEmail notifies admins and the purchaser about a new order.
	TaskOrderPlacedEmail = constants.TaskOrderPlacedEmail
	// TaskWelcomeEmail greets a freshly registered account.
	TaskWelcomeEmail = constants.TaskWelcomeEmail
)

// OrderPlacedEmailPayload is the order notification task payload.
type OrderPlacedEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// WelcomeEmailPayload is the welcome email task payload.
type WelcomeEmailPayload struct {
	Email string `json:"email"`
}

// NewOrderPlacedEmailTask creates an order notification task.
func NewOrderPlacedEmailTask(payload OrderPlacedEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlacedEmail, body), nil
}

// NewWelcomeEmailTask creates a welcome email task.
func NewWelcomeEmailTask(payload WelcomeEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWelcomeEmail, body), nil
}
