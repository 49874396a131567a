package internal

import (
	"time"

	"github.com/corvess/go-httpx/internal/model"
	"github.com/corvess/go-httpx/internal/transport"
)

// Option configures a Client at construction time.
type Option func(*Client) error

// WithBaseURL sets the URL every relative request URL merges against.
func WithBaseURL(rawurl string) Option {
	return func(c *Client) error {
		u, err := model.Merge(nil, rawurl)
		if err != nil {
			return err
		}
		c.baseURL = u
		return nil
	}
}

// WithHeader appends one client-level default header. Repeating a name
// keeps both entries, in the order given.
func WithHeader(name, value string) Option {
	return func(c *Client) error {
		c.headers.Add(name, value)
		return nil
	}
}

// WithHeaders replaces the client-level default headers wholesale.
func WithHeaders(h *model.Headers) Option {
	return func(c *Client) error {
		c.headers = h.Clone()
		return nil
	}
}

// WithTransport sets the default transport used when no mount matches.
func WithTransport(tr transport.Transport) Option {
	return func(c *Client) error {
		c.transport = tr
		return nil
	}
}

// WithMounts registers pattern-keyed transports. Patterns take the
// forms "all://", "scheme://" and "scheme://host"; the most specific
// matching mount wins.
func WithMounts(mounts map[string]transport.Transport) Option {
	return func(c *Client) error {
		t, err := newMountTable(mounts)
		if err != nil {
			return err
		}
		c.mounts = t
		return nil
	}
}

// WithTimeout bounds every dispatch, covering connection acquisition,
// the transport round trip, and streamed body reads.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.timeout = d
		return nil
	}
}

// WithMiddleware appends middlewares to the dispatch chain.
func WithMiddleware(mws ...Middleware) Option {
	return func(c *Client) error {
		c.middlewares = append(c.middlewares, mws...)
		return nil
	}
}
