// Package delivery defines the contract every transport surface fulfills.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP server, worker).
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
