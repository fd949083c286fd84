// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the signed bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract the delivery layer (API handlers, guards) depends on.
type AuthUsecase interface {
	// Register creates a new user account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// ValidateUser checks an email/password pair against the stored
	// credentials. On success the returned user carries no password hash.
	// Unknown email and wrong password are indistinguishable to the caller.
	ValidateUser(ctx context.Context, email, password string) (*entity.User, error)

	// Login validates credentials and mints a bearer token for the account.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
