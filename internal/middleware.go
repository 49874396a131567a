package internal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/corvess/go-httpx/internal/model"
)

type Handler = func(ctx context.Context, req *model.Request) (*model.Response, error)

// Middleware wraps dispatch. Middlewares run between transport
// resolution and the transport's Handle call.
type Middleware func(next Handler) Handler

// Use appends mw to the end of the chain. The last "Use"d mw executes
// closest to the transport.
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

// LogRequests logs every dispatch with its outcome. The library emits
// nothing on its own; logging is strictly opt-in.
func LogRequests(log *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *model.Request) (*model.Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			if err != nil {
				log.Warn("request failed",
					zap.String("method", req.Method),
					zap.String("url", req.URL.Redacted()),
					zap.Duration("elapsed", time.Since(start)),
					zap.Error(err))
				return nil, err
			}
			log.Debug("request",
				zap.String("method", req.Method),
				zap.String("url", req.URL.Redacted()),
				zap.Int("status", resp.StatusCode),
				zap.Duration("elapsed", time.Since(start)))
			return resp, nil
		}
	}
}

// RequestID stamps outgoing requests with an X-Request-Id header when
// the caller did not set one.
func RequestID() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *model.Request) (*model.Response, error) {
			req.Headers.SetDefault("X-Request-Id", uuid.NewString())
			return next(ctx, req)
		}
	}
}
