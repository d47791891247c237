// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running server started by the application runtime.
// Serve blocks until the server stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
