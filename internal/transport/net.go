package transport

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/http2"

	"github.com/corvess/go-httpx/internal/model"
)

const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90 * time.Second
)

// Net is the default pooled network transport. It delegates wire-level
// HTTP, TLS, and connection pooling to [net/http.Transport], with
// HTTP/2 negotiated over TLS. Content decoding is left to the response
// layer, so bodies come back exactly as received.
type Net struct {
	rt *http.Transport

	openOnce sync.Once
	openErr  error
}

type NetOption func(*Net)

// WithTLSConfig sets the TLS configuration used for https dials.
func WithTLSConfig(cfg *tls.Config) NetOption {
	return func(n *Net) { n.rt.TLSClientConfig = cfg }
}

// WithProxy routes every dial through the given proxy URL.
func WithProxy(proxy *url.URL) NetOption {
	return func(n *Net) { n.rt.Proxy = http.ProxyURL(proxy) }
}

// WithMaxIdleConns bounds the connection pool.
func WithMaxIdleConns(total, perHost int) NetOption {
	return func(n *Net) {
		n.rt.MaxIdleConns = total
		n.rt.MaxIdleConnsPerHost = perHost
	}
}

func NewNet(opts ...NetOption) *Net {
	n := &Net{rt: &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        defaultMaxIdleConns,
		MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
		IdleConnTimeout:     defaultIdleConnTimeout,

		// the response layer reverses content codings itself
		DisableCompression: true,
	}}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Open upgrades the underlying pool with h2 support. The pool itself
// dials lazily, so no connection is established here.
func (n *Net) Open() error {
	n.openOnce.Do(func() {
		_, n.openErr = http2.ConfigureTransports(n.rt)
	})
	return n.openErr
}

func (n *Net) Close() error {
	n.rt.CloseIdleConnections()
	return nil
}

func (n *Net) Handle(ctx context.Context, req *model.Request) (*model.Response, error) {
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}

	hr, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, err
	}
	hr.ContentLength = req.ContentLength
	hr.GetBody = req.GetBody
	for _, p := range req.Headers.Raw() {
		switch strings.ToLower(p.Name) {
		case "host":
			hr.Host = p.Value
		case "connection":
			// keep-alive is the pool's default; net/http rejects
			// explicit connection tokens it manages itself
		default:
			hr.Header.Add(p.Name, p.Value)
		}
	}

	start := time.Now()
	resp, err := n.rt.RoundTrip(hr)
	if err != nil {
		return nil, err
	}

	headers := &model.Headers{}
	for k, vv := range resp.Header {
		for _, v := range vv {
			headers.Add(k, v)
		}
	}
	return &model.Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp.Status, resp.StatusCode),
		Proto:      resp.Proto,
		Headers:    headers,
		Body:       resp.Body,
		Elapsed:    time.Since(start),
	}, nil
}

// reasonPhrase strips the leading code from an "200 OK" status line.
func reasonPhrase(status string, code int) string {
	if _, rest, ok := strings.Cut(status, " "); ok {
		return rest
	}
	return http.StatusText(code)
}
