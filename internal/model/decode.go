package model

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// AcceptedEncodings is what the client advertises and what newDecoder
// can reverse, in preference order.
const AcceptedEncodings = "gzip, deflate, br"

// newDecoder wraps the raw wire stream with readers reversing the
// response's content codings. Codings apply in the order the server
// listed them, so they unwrap outermost-first, i.e. in reverse.
// Identity and unknown codings pass the stream through untouched.
func newDecoder(raw io.Reader, encodings []string) (io.Reader, error) {
	var codings []string
	for _, e := range encodings {
		for _, c := range strings.Split(e, ",") {
			if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
				codings = append(codings, c)
			}
		}
	}
	r := raw
	for i := len(codings) - 1; i >= 0; i-- {
		switch codings[i] {
		case "gzip":
			r = &lazyGzipReader{src: r}
		case "deflate":
			r = newDeflateReader(r)
		case "br":
			r = brotli.NewReader(r)
		case "identity":
		default:
			// not ours to decode, hand over the wire bytes
			return raw, nil
		}
	}
	return r, nil
}

// lazyGzipReader defers gzip.NewReader until the first Read so that an
// empty body does not fail on a missing gzip header.
type lazyGzipReader struct {
	src io.Reader
	gz  io.Reader
	err error
}

func (r *lazyGzipReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.gz == nil {
		br := bufio.NewReader(r.src)
		if _, err := br.Peek(1); err == io.EOF {
			r.err = io.EOF
			return 0, io.EOF
		}
		gz, err := gzip.NewReader(br)
		if err != nil {
			r.err = err
			return 0, err
		}
		r.gz = gz
	}
	return r.gz.Read(p)
}

// deflateReader sniffs whether the server sent a zlib-wrapped stream
// (the RFC meaning of "deflate") or a bare deflate stream (what some
// servers actually send) and picks the matching reader.
type deflateReader struct {
	br  *bufio.Reader
	r   io.Reader
	err error
}

func newDeflateReader(src io.Reader) *deflateReader {
	return &deflateReader{br: bufio.NewReader(src)}
}

func (d *deflateReader) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if d.r == nil {
		head, err := d.br.Peek(1)
		if err == io.EOF {
			d.err = io.EOF
			return 0, io.EOF
		}
		if len(head) == 1 && head[0]&0x0f == 0x08 {
			zr, err := zlib.NewReader(d.br)
			if err != nil {
				d.err = err
				return 0, err
			}
			d.r = zr
		} else {
			d.r = flate.NewReader(d.br)
		}
	}
	return d.r.Read(p)
}
