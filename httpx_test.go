package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAgainstRealServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello, world!"))
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Get(context.Background(), "/")
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "OK", resp.Reason)
	assert.Equal(t, "HTTP/1.1", resp.Proto)
	assert.Greater(t, resp.Elapsed, time.Duration(0))
	assert.NotNil(t, resp.Request)

	text, err := resp.Text()
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", text)
}

func TestStreamAgainstRealServer(t *testing.T) {
	payload := make([]byte, 64<<10)
	for i := range payload {
		payload[i] = byte(i)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	c, err := NewClient()
	require.NoError(t, err)
	defer c.Close()

	req, err := c.BuildRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Stream(context.Background(), req)
	require.NoError(t, err)
	defer resp.Close()

	var body []byte
	for chunk, err := range resp.IterBytes() {
		require.NoError(t, err)
		body = append(body, chunk...)
	}
	assert.Equal(t, payload, body)
}

func TestVerbsAgainstRealServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Method))
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	for _, tc := range []struct {
		want string
		call func() (*Response, error)
	}{
		{"GET", func() (*Response, error) { return c.Get(ctx, "/") }},
		{"POST", func() (*Response, error) { return c.Post(ctx, "/", []byte("Hello, world!")) }},
		{"PUT", func() (*Response, error) { return c.Put(ctx, "/", "payload") }},
		{"PATCH", func() (*Response, error) { return c.Patch(ctx, "/", []byte("p")) }},
		{"DELETE", func() (*Response, error) { return c.Delete(ctx, "/") }},
		{"OPTIONS", func() (*Response, error) { return c.Options(ctx, "/") }},
	} {
		resp, err := tc.call()
		require.NoError(t, err, tc.want)
		assert.Equal(t, 200, resp.StatusCode, tc.want)
		text, err := resp.Text()
		require.NoError(t, err)
		assert.Equal(t, tc.want, text)
	}

	resp, err := c.Head(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
