package httpx

import (
	"github.com/corvess/go-httpx/internal"
)

type Client = internal.Client
type Option = internal.Option
type Middleware = internal.Middleware
type Handler = internal.Handler

var (
	NewClient = internal.NewClient

	WithBaseURL    = internal.WithBaseURL
	WithHeader     = internal.WithHeader
	WithHeaders    = internal.WithHeaders
	WithTransport  = internal.WithTransport
	WithMounts     = internal.WithMounts
	WithTimeout    = internal.WithTimeout
	WithMiddleware = internal.WithMiddleware

	LogRequests = internal.LogRequests
	RequestID   = internal.RequestID
)
