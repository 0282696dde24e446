// Package delivery holds the transports that expose the application.
package delivery

import "context"

// Delivery is a transport the application serves on until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
