package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create a user directly.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput defines the mutable user fields. Nil means "leave unchanged".
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// CreateUser creates a new user account.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser applies the given changes to an existing user.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// GetUserWithOrders retrieves a user together with every order they own.
	GetUserWithOrders(ctx context.Context, id uuid.UUID) (*entity.UserWithOrders, error)
}
