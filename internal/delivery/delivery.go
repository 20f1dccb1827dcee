// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound transport started by fx after construction.
type Delivery interface {
	Serve(ctx context.Context) error
}
