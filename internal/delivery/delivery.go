package delivery

import "context"

// Delivery is a long running inbound adapter started by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
