// Package delivery defines the inbound surfaces the process runs.
package delivery

import "context"

// Delivery is a long-running inbound surface, such as the HTTP API.
type Delivery interface {
	// Serve blocks until the surface stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
