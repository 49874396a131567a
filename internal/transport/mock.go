package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/corvess/go-httpx/internal/model"
)

// Mock is a transport backed by an in-process handler function, for
// tests and stubbed environments. No network is involved.
type Mock struct {
	Handler func(req *model.Request) (*model.Response, error)
}

func NewMock(handler func(req *model.Request) (*model.Response, error)) *Mock {
	return &Mock{Handler: handler}
}

func (m *Mock) Open() error  { return nil }
func (m *Mock) Close() error { return nil }

func (m *Mock) Handle(ctx context.Context, req *model.Request) (*model.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := m.Handler(req)
	if err != nil {
		return nil, err
	}
	if resp.Headers == nil {
		resp.Headers = &model.Headers{}
	}
	if resp.Body == nil {
		resp.Body = io.NopCloser(bytes.NewReader(nil))
	}
	if resp.Reason == "" {
		resp.Reason = http.StatusText(resp.StatusCode)
	}
	if resp.Proto == "" {
		resp.Proto = "HTTP/1.1"
	}
	return resp, nil
}

// NewResponse builds a response around a byte payload, for use from
// Mock handlers.
func NewResponse(status int, body []byte) *model.Response {
	h := &model.Headers{}
	h.Add("Content-Length", strconv.Itoa(len(body)))
	return &model.Response{
		StatusCode: status,
		Reason:     http.StatusText(status),
		Proto:      "HTTP/1.1",
		Headers:    h,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

// NewJSONResponse builds an application/json response from v.
func NewJSONResponse(status int, v any) *model.Response {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err) // fixed test payloads only
	}
	resp := NewResponse(status, b)
	resp.Headers.Add("Content-Type", "application/json")
	return resp
}
