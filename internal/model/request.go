package model

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
)

// Request is a fully built outgoing request: the URL is already merged
// against the client's base URL and Headers already carries the client
// defaults. Headers may still be edited before dispatch.
type Request struct {
	Method  string
	URL     *url.URL
	Headers *Headers

	// Body is the request payload: nil, string, []byte, or io.Reader.
	// Prepare translates it into GetBody before dispatch.
	Body any

	// GetBody returns a fresh reader over the payload where the source
	// allows it. A plain io.Reader source is single-shot.
	GetBody func() (io.ReadCloser, error)

	// ContentLength is the payload size, -1 when unknown.
	ContentLength int64
}

// Prepare derives GetBody and ContentLength from Body. It is called
// once by the client before dispatch; transports only ever see the
// prepared form.
func (r *Request) Prepare() error {
	if r.Headers == nil {
		r.Headers = &Headers{}
	}
	switch b := r.Body.(type) {
	case nil:
		r.ContentLength = 0
		r.GetBody = func() (io.ReadCloser, error) {
			return http.NoBody, nil
		}
	case string:
		r.ContentLength = int64(len(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(b)), nil
		}
	case []byte:
		r.ContentLength = int64(len(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}
	case io.ReadCloser:
		r.ContentLength = -1
		var once atomic.Bool
		r.GetBody = func() (io.ReadCloser, error) {
			if once.CompareAndSwap(false, true) {
				return b, nil
			}
			return nil, ErrStreamConsumed
		}
	case io.Reader:
		r.ContentLength = -1
		var once atomic.Bool
		r.GetBody = func() (io.ReadCloser, error) {
			if once.CompareAndSwap(false, true) {
				return io.NopCloser(b), nil
			}
			return nil, ErrStreamConsumed
		}
	default:
		return fmt.Errorf("httpx: unsupported body type %T", r.Body)
	}
	return nil
}
