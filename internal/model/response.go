package model

import (
	"encoding/json"
	"io"
	"iter"
	"time"
)

// iteration reads the stream in chunks of this size
const chunkSize = 4096

// Response is the result of one dispatched request. Transports fill the
// exported fields; consumption state is tracked internally.
//
// A response body is single-consumer. It is either drained into the
// buffer exactly once (Read, or eagerly by Client.Do) or iterated
// incrementally exactly once; both paths observe the same bytes.
type Response struct {
	StatusCode int
	Reason     string
	Proto      string
	Headers    *Headers

	// Body is the raw wire stream handed over by the transport. It
	// still carries any content encoding. Streaming callers must
	// Close the response when done.
	Body io.ReadCloser

	Request *Request
	Elapsed time.Duration

	content  []byte
	buffered bool
	consumed bool
	closed   bool
}

// Read drains the body, reverses any content encoding, and returns the
// decoded bytes. Once materialized the buffer is returned as-is on
// every further call. Reading after the stream was consumed through
// iteration fails with ErrStreamConsumed.
func (r *Response) Read() ([]byte, error) {
	if r.buffered {
		return r.content, nil
	}
	if r.consumed {
		return nil, ErrStreamConsumed
	}
	r.consumed = true
	defer r.Close()
	body, err := newDecoder(r.Body, r.Headers.Values("Content-Encoding"))
	if err != nil {
		return nil, err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	r.content = b
	r.buffered = true
	return b, nil
}

// Text returns the decoded body as a string.
func (r *Response) Text() (string, error) {
	b, err := r.Read()
	return string(b), err
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	b, err := r.Read()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// IterBytes yields the body in decoded chunks. On a buffered response
// it replays the materialized content; on a streamed response it
// consumes the stream, after which any further read or iteration fails
// with ErrStreamConsumed.
func (r *Response) IterBytes() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if r.buffered {
			if len(r.content) > 0 {
				yield(r.content, nil)
			}
			return
		}
		if r.consumed {
			yield(nil, ErrStreamConsumed)
			return
		}
		r.consumed = true
		body, err := newDecoder(r.Body, r.Headers.Values("Content-Encoding"))
		if err != nil {
			yield(nil, err)
			return
		}
		r.iterate(body, yield)
	}
}

// IterRaw yields the body in chunks exactly as received on the wire,
// with no content decoding applied. Only valid on a streamed response
// that has not been consumed yet.
func (r *Response) IterRaw() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if r.buffered || r.consumed {
			yield(nil, ErrStreamConsumed)
			return
		}
		r.consumed = true
		r.iterate(r.Body, yield)
	}
}

func (r *Response) iterate(src io.Reader, yield func([]byte, error) bool) {
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if !yield(chunk, nil) {
				return
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			yield(nil, err)
			return
		}
	}
}

// RaiseForStatus returns an *HTTPStatusError for 4xx and 5xx status
// codes and nil otherwise. The error keeps both the request and the
// response.
func (r *Response) RaiseForStatus() error {
	if r.StatusCode < 400 || r.StatusCode >= 600 {
		return nil
	}
	return &HTTPStatusError{Request: r.Request, Response: r}
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect reports a 3xx status.
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// Close releases the underlying body stream. It is safe to call more
// than once and after the body was fully read.
func (r *Response) Close() error {
	if r.closed || r.Body == nil {
		return nil
	}
	r.closed = true
	return r.Body.Close()
}
