package model

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrClientClosed is returned by any dispatch attempted after the
	// owning client was closed. The request never reaches a transport.
	ErrClientClosed = errors.New("httpx: client is closed")

	// ErrStreamConsumed is returned when a streamed response body is
	// iterated or read a second time after it was fully consumed.
	ErrStreamConsumed = errors.New("httpx: response stream already consumed")
)

// UnsupportedProtocolError reports a request URL whose scheme is neither
// http(s) nor covered by any mounted transport.
type UnsupportedProtocolError struct {
	Scheme string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("httpx: unsupported protocol scheme %q", e.Scheme)
}

// InvalidURLError reports a request URL that is unusable after merging
// against the client's base URL, e.g. missing a scheme or host.
type InvalidURLError struct {
	URL    string
	Reason string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("httpx: invalid URL %q: %s", e.URL, e.Reason)
}

// HTTPStatusError is returned by [Response.RaiseForStatus] for 4xx and
// 5xx responses. It keeps references to both sides of the exchange.
type HTTPStatusError struct {
	Request  *Request
	Response *Response
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("httpx: %s %q responded %d %s",
		e.Request.Method, e.Request.URL.Redacted(), e.Response.StatusCode, e.Response.Reason)
}

// TransportError wraps any failure surfaced by a transport's Handle.
// The underlying error is preserved verbatim and never swallowed.
type TransportError struct {
	Op  string // "dial", "handle", "read body"
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("httpx: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the wrapped error was a dispatch deadline
// expiring, either the client-level timeout or the caller's context.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}
