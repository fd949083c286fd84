package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a single purchase placed by a user.
// UserID is set at creation and immutable for the lifetime of the order.
type Order struct {
	ID        uuid.UUID // The unique identifier for the order.
	UserID    uuid.UUID // The owning user. Never changes after creation.
	Product   string    // Free-text description of the ordered product.
	CreatedAt time.Time // Timestamp of when this order was placed.
	UpdatedAt time.Time // Timestamp of the last modification to this order.
}

// UserWithOrders is the aggregated read model joining a user with the
// orders they own. Orders may be empty; that is not an error state.
type UserWithOrders struct {
	User   *User
	Orders []*Order
}
