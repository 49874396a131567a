package internal

import (
	"context"
	"net/http"

	"github.com/corvess/go-httpx/internal/model"
)

// Request builds and dispatches a request in one step.
func (c *Client) Request(ctx context.Context, method, url string, body any) (*model.Response, error) {
	req, err := c.BuildRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

func (c *Client) Get(ctx context.Context, url string) (*model.Response, error) {
	return c.Request(ctx, http.MethodGet, url, nil)
}

func (c *Client) Head(ctx context.Context, url string) (*model.Response, error) {
	return c.Request(ctx, http.MethodHead, url, nil)
}

func (c *Client) Options(ctx context.Context, url string) (*model.Response, error) {
	return c.Request(ctx, http.MethodOptions, url, nil)
}

func (c *Client) Delete(ctx context.Context, url string) (*model.Response, error) {
	return c.Request(ctx, http.MethodDelete, url, nil)
}

func (c *Client) Post(ctx context.Context, url string, body any) (*model.Response, error) {
	return c.Request(ctx, http.MethodPost, url, body)
}

func (c *Client) Put(ctx context.Context, url string, body any) (*model.Response, error) {
	return c.Request(ctx, http.MethodPut, url, body)
}

func (c *Client) Patch(ctx context.Context, url string, body any) (*model.Response, error) {
	return c.Request(ctx, http.MethodPatch, url, body)
}
