package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves all orders.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListByUser retrieves all orders owned by the given user. A user with
	// no orders yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order. The owning user reference is enforced by
	// the store's foreign key constraint.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order's non-owner fields.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order by ID. Returns ErrOrderNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
