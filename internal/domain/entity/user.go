// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// Email doubles as the login key and is unique across the store.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's email address, used as the login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // The bcrypt hash of the user's password. Write-only: every read path except the credential lookup returns it empty.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Scrub clears credential material before the user crosses a trust boundary.
func (u *User) Scrub() *User {
	if u == nil {
		return nil
	}
	u.PasswordHash = ""

	return u
}
