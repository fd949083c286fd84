package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the data required to place a new order.
type CreateOrderInput struct {
	UserID  uuid.UUID
	Product string
}

// UpdateOrderInput defines the mutable order fields. The owner is not among
// them: a request naming a different UserID than the stored one is rejected
// before any write happens.
type UpdateOrderInput struct {
	UserID  *uuid.UUID
	Product *string
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// CreateOrder places a new order for an existing user.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves a single order whose owner still exists.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves all orders.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrdersByUser retrieves all orders owned by the given user.
	// A user with no orders yields an empty slice.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrder applies the given changes to an existing order.
	UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes an order by ID.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
