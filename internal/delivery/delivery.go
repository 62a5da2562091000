// Package delivery holds the processes' entry points: the API server, the
// push worker and the scheduler.
package delivery

import "context"

// Delivery is a long-running server started by the fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
