package httpx

import (
	"github.com/corvess/go-httpx/internal/model"
)

type UnsupportedProtocolError = model.UnsupportedProtocolError
type InvalidURLError = model.InvalidURLError
type HTTPStatusError = model.HTTPStatusError
type TransportError = model.TransportError

var (
	ErrClientClosed   = model.ErrClientClosed
	ErrStreamConsumed = model.ErrStreamConsumed
)
