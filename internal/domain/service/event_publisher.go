package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order event types published to the message queue.
const (
	OrderEventCreated = "order.created"
	OrderEventDeleted = "order.deleted"
)

// OrderEvent represents an order lifecycle change broadcast for downstream
// consumers (fulfilment, analytics).
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	OrderID    uuid.UUID `json:"order_id"`
	UserID     uuid.UUID `json:"user_id"`
	Product    string    `json:"product"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
