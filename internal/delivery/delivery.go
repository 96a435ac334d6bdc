// Package delivery defines the contract shared by every long-running server
// in the application (HTTP API, broker bridge).
package delivery

import "context"

// Delivery is a server that blocks in Serve until it fails or ctx is
// cancelled. Shutdown hooks are registered through fx lifecycle by each
// implementation.
type Delivery interface {
	Serve(ctx context.Context) error
}
