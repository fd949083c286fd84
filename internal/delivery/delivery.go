// Package delivery defines the contract every transport-facing server
// implements, so the application can start any number of them uniformly.
package delivery

import "context"

// Delivery is a long-running request-serving surface (HTTP today).
type Delivery interface {
	// Serve blocks, accepting requests until the server is shut down.
	Serve(ctx context.Context) error
}
