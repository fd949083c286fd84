package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserDirectory is the narrow slice of user capability the order service
// needs. The user and order services reference each other, so neither can
// take the other as a constructor argument; each receives the counterpart's
// directory in a separate binding step after both are built.
type UserDirectory interface {
	// GetUserByID reports whether the user exists and returns it.
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// OrderDirectory is the narrow slice of order capability the user service
// needs to assemble the user-with-orders read model.
type OrderDirectory interface {
	// ListOrdersByUser retrieves all orders owned by the given user.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}

// UserDirectoryBinder is implemented by services that need the user
// directory wired in after construction.
type UserDirectoryBinder interface {
	BindUserDirectory(dir UserDirectory)
}

// OrderDirectoryBinder is the counterpart binder for the user side.
type OrderDirectoryBinder interface {
	BindOrderDirectory(dir OrderDirectory)
}
