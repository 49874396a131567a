// package httpx is an HTTP client built around three ideas: request
// URLs merge against a configurable base URL, dispatch routes through
// transports mounted on URL patterns, and response bodies are either
// buffered eagerly or streamed under explicit caller ownership.
//
// the package only re-exports from internal packages so that user code
// imports a single name.
package httpx

import (
	"github.com/corvess/go-httpx/internal/model"
	"github.com/corvess/go-httpx/internal/transport"
)

type Request = model.Request
type Response = model.Response
type Headers = model.Headers
type HeaderPair = model.HeaderPair

// Transport is the capability a client dispatches through. Implement
// it to plug custom protocols in via WithTransport or WithMounts.
type Transport = transport.Transport

type NetTransport = transport.Net
type NetOption = transport.NetOption
type MockTransport = transport.Mock

var (
	NewHeaders = model.NewHeaders
	MergeURL   = model.Merge

	NewNetTransport  = transport.NewNet
	WithTLSConfig    = transport.WithTLSConfig
	WithProxy        = transport.WithProxy
	WithMaxIdleConns = transport.WithMaxIdleConns

	NewMockTransport = transport.NewMock
	NewResponse      = transport.NewResponse
	NewJSONResponse  = transport.NewJSONResponse
)
