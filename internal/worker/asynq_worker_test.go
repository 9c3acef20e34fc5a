package worker

import (
	"context"
	"testing"

	"github.com/favorite-plug/api/internal/config"
	"github.com/favorite-plug/api/internal/provider"
	"github.com/favorite-plug/api/internal/queue"
	"github.com/favorite-plug/api/internal/service"

	"github.com/hibiken/asynq"
)

func TestHandleOrderPlacedEmailSkipsInvalidPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})

	task, err := queue.NewOrderPlacedEmailTask(queue.OrderPlacedEmailPayload{OrderID: 0})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderPlacedEmail(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}

	bad := asynq.NewTask(queue.TaskOrderPlacedEmail, []byte("{not json"))
	if err := consumer.handleOrderPlacedEmail(context.Background(), bad); err == nil {
		t.Fatalf("broken payload should return an error")
	}
}

func TestHandleWelcomeEmailDisabledSenderIsNotRetried(t *testing.T) {
	consumer := NewConsumer(&provider.Container{
		EmailService: service.NewEmailService(&config.EmailConfig{Enabled: false}),
	})

	task, err := queue.NewWelcomeEmailTask(queue.WelcomeEmailPayload{Email: "hello@example.com"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	// a disabled mailer is a deployment choice, not a transient failure
	if err := consumer.handleWelcomeEmail(context.Background(), task); err != nil {
		t.Fatalf("disabled sender should not trigger a retry, got %v", err)
	}
}

func TestRegisterToleratesNilReceivers(t *testing.T) {
	var consumer *Consumer
	consumer.Register(nil)

	mux := asynq.NewServeMux()
	NewConsumer(nil).Register(mux)
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(&config.QueueConfig{Enabled: false}, NewConsumer(&provider.Container{})); err == nil {
		t.Fatalf("disabled queue should fail service construction")
	}
	if _, err := NewService(&config.QueueConfig{Enabled: true}, nil); err == nil {
		t.Fatalf("nil consumer should fail service construction")
	}
}
