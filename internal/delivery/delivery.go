// Package delivery defines the inbound transport abstraction.
package delivery

import "context"

// Delivery is one serving surface of the application. Serve blocks until
// the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
