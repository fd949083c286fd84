package context

import (
	"context"

	"storefront/internal/domain/entity"
)

// KeyIdentity is the key for storing the caller identity in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the caller identity attached by the request guard.
// Returns nil when the request was not authenticated.
func GetIdentity(ctx context.Context) *entity.Identity {
	if identity, ok := ctx.Value(KeyIdentity).(*entity.Identity); ok {
		return identity
	}

	return nil
}
