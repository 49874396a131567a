package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/corvess/go-httpx/internal/model"
	"github.com/corvess/go-httpx/internal/transport"
)

const userAgent = "go-httpx/" + Version

// Client dispatches requests through a set of mounted transports plus
// one default transport. It owns those transports: they are opened
// lazily on first dispatch and closed together when the client closes.
//
// A Client is safe for concurrent use. Once closed it stays closed;
// every further dispatch fails with [model.ErrClientClosed].
type Client struct {
	baseURL     *url.URL
	headers     *model.Headers
	mounts      mountTable
	transport   transport.Transport
	middlewares []Middleware
	timeout     time.Duration

	mu     sync.Mutex
	opened map[transport.Transport]bool
	closed atomic.Bool
}

func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		headers: &model.Headers{},
		opened:  map[transport.Transport]bool{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.transport == nil {
		c.transport = transport.NewNet()
	}
	return c, nil
}

// IsClosed reports whether Close has been called.
func (c *Client) IsClosed() bool {
	return c.closed.Load()
}

// Close closes every owned transport, mounted ones first in mount
// order, the default transport last. Each transport's Close runs even
// when an earlier one fails; the errors are joined. Closing twice is a
// no-op, and no transport hook runs a second time.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	for _, e := range c.mounts.entries {
		if err := e.tr.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.transport.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BuildRequest merges rawurl against the base URL and composes the
// final header sequence: the library defaults (Host, Accept,
// Accept-Encoding, Connection, User-Agent) seed the list, client-level
// headers follow, overriding a library default in place when the name
// matches. The returned request can still be edited before it is
// passed to Do or Stream.
func (c *Client) BuildRequest(method, rawurl string, body any) (*model.Request, error) {
	u, err := model.Merge(c.baseURL, rawurl)
	if err != nil {
		return nil, err
	}
	headers := model.NewHeaders(
		model.HeaderPair{Name: "Host", Value: u.Host},
		model.HeaderPair{Name: "Accept", Value: "*/*"},
		model.HeaderPair{Name: "Accept-Encoding", Value: model.AcceptedEncodings},
		model.HeaderPair{Name: "Connection", Value: "keep-alive"},
		model.HeaderPair{Name: "User-Agent", Value: userAgent},
	)
	for _, p := range c.headers.Raw() {
		if isInjectedDefault(p.Name) {
			// a client-level value replaces the library default in place
			headers.Set(p.Name, p.Value)
		} else {
			headers.Add(p.Name, p.Value)
		}
	}

	req := &model.Request{
		Method:  method,
		URL:     u,
		Headers: headers,
		Body:    body,
	}
	if err := req.Prepare(); err != nil {
		return nil, err
	}
	return req, nil
}

// Do dispatches req and eagerly drains the response body into the
// buffer, so the returned response needs no Close and Read is purely
// in-memory.
func (c *Client) Do(ctx context.Context, req *model.Request) (*model.Response, error) {
	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := resp.Read(); err != nil {
		resp.Close()
		return nil, &model.TransportError{Op: "read body", URL: req.URL.Redacted(), Err: err}
	}
	return resp, nil
}

// Stream dispatches req and returns with the body stream still open.
// The caller owns the stream: it must Close the response on every exit
// path, and may consume the body once via Read, IterBytes or IterRaw.
func (c *Client) Stream(ctx context.Context, req *model.Request) (*model.Response, error) {
	return c.dispatch(ctx, req)
}

func (c *Client) dispatch(ctx context.Context, req *model.Request) (*model.Response, error) {
	if c.closed.Load() {
		return nil, model.ErrClientClosed
	}
	if req.URL == nil {
		return nil, &model.InvalidURLError{Reason: "request has no URL"}
	}
	if req.GetBody == nil {
		if err := req.Prepare(); err != nil {
			return nil, err
		}
	}
	if err := validateHeaders(req.Headers); err != nil {
		return nil, err
	}

	tr, err := c.resolveTransport(req.URL)
	if err != nil {
		return nil, err
	}
	if err := c.ensureOpen(tr); err != nil {
		return nil, err
	}

	cancel := func() {}
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	next := func(ctx context.Context, req *model.Request) (*model.Response, error) {
		return tr.Handle(ctx, req)
	}
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}

	start := time.Now()
	resp, err := next(ctx, req)
	if err != nil {
		cancel()
		return nil, &model.TransportError{Op: "handle", URL: req.URL.Redacted(), Err: err}
	}
	resp.Request = req
	resp.Elapsed = time.Since(start)
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	// the timeout must keep covering body reads on a streamed response
	resp.Body = bodyWithCancel{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func isInjectedDefault(name string) bool {
	switch {
	case strings.EqualFold(name, "Host"),
		strings.EqualFold(name, "Accept"),
		strings.EqualFold(name, "Accept-Encoding"),
		strings.EqualFold(name, "Connection"),
		strings.EqualFold(name, "User-Agent"):
		return true
	}
	return false
}

// resolveTransport picks the mounted transport for u, falling back to
// the default transport for http(s). Any other scheme without a
// covering mount is an unsupported protocol.
func (c *Client) resolveTransport(u *url.URL) (transport.Transport, error) {
	if tr := c.mounts.resolve(u); tr != nil {
		return tr, nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &model.UnsupportedProtocolError{Scheme: u.Scheme}
	}
	return c.transport, nil
}

// ensureOpen runs the transport's Open hook before its first dispatch.
// Checking the closed flag under the same lock keeps a concurrent
// Close from racing an in-flight open.
func (c *Client) ensureOpen(tr transport.Transport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return model.ErrClientClosed
	}
	if c.opened[tr] {
		return nil
	}
	if err := tr.Open(); err != nil {
		return &model.TransportError{Op: "open", Err: err}
	}
	c.opened[tr] = true
	return nil
}

func validateHeaders(h *model.Headers) error {
	for _, p := range h.Raw() {
		if !httpguts.ValidHeaderFieldName(p.Name) {
			return fmt.Errorf("httpx: invalid header name %q", p.Name)
		}
		if !httpguts.ValidHeaderFieldValue(p.Value) {
			return fmt.Errorf("httpx: invalid value for header %q", p.Name)
		}
	}
	return nil
}

type bodyWithCancel struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b bodyWithCancel) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
