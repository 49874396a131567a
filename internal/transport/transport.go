// package transport defines the capability a client dispatches through
// and the built-in implementations. A transport owns the wire: protocol
// framing, TLS, and connection pooling all live behind Handle. The
// client core only selects a transport and manages its lifecycle.
package transport

import (
	"context"

	"github.com/corvess/go-httpx/internal/model"
)

// Transport performs the actual I/O for one request. Implementations
// must be safe for concurrent Handle calls.
//
// Open is invoked by the owning client before the first dispatch
// through the transport, Close exactly once when the client closes.
// Handle must honor ctx cancellation and, on timeout, leave any pooled
// connection reusable or discarded, never half-open.
type Transport interface {
	Handle(ctx context.Context, req *model.Request) (*model.Response, error)
	Open() error
	Close() error
}
