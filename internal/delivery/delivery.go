// Package delivery defines the interface every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP API, worker endpoint)
// started by the application entrypoint.
type Delivery interface {
	// Serve runs the surface until the process shuts down.
	Serve(ctx context.Context) error
}
