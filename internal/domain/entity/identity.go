package entity

import "github.com/google/uuid"

// Identity is the minimal verified claim describing who is calling.
// It is derived per request (from a validated credential or a token) and
// never persisted.
type Identity struct {
	ID    uuid.UUID // The authenticated user's ID.
	Email string    // The authenticated user's email. Empty under the header-identity policy.
}
