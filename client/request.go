package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const jsonContentType = "application/json"

// ReaderFunc is the type of function that can be given natively to NewRequest
type ReaderFunc func() (io.Reader, error)

// Request wraps the metadata needed to create HTTP requests.
type Request struct {
	// body replays the request payload. It backs http.Request.GetBody so the
	// transport may resend the body on a redirect.
	body ReaderFunc

	// Embed an HTTP request directly. This makes a *Request act exactly
	// like an *http.Request so that all meta methods are supported.
	*http.Request
}

// WithContext returns wrapped Request with a shallow copy of underlying *http.Request
// with its context changed to ctx. The provided ctx must be non-nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.Request = r.Request.WithContext(ctx)
	return r
}

func getBodyReaderAndContentLength(rawBody interface{}) (ReaderFunc, int64, error) {
	var buf []byte
	switch body := rawBody.(type) {
	case nil:
		return nil, 0, nil
	case ReaderFunc:
		tmp, err := body()
		if err != nil {
			return nil, 0, err
		}
		if buf, err = io.ReadAll(tmp); err != nil {
			return nil, 0, err
		}
	case []byte:
		buf = body
	case *bytes.Buffer:
		buf = body.Bytes()
	// Read all in so we can reset
	case io.Reader:
		b, err := io.ReadAll(body)
		if err != nil {
			return nil, 0, err
		}
		buf = b
	// json object
	default:
		b, err := json.Marshal(rawBody)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request body: %w", err)
		}
		buf = b
	}

	bodyReader := func() (io.Reader, error) {
		return bytes.NewReader(buf), nil
	}
	return bodyReader, int64(len(buf)), nil
}

// RewindBody rewinds the http body when non-nil.
func RewindBody(r *http.Request, body ReaderFunc) error {
	if body == nil {
		return nil
	}
	b, err := body()
	if err != nil {
		return err
	}
	if c, ok := b.(io.ReadCloser); ok {
		r.Body = c
	} else {
		r.Body = io.NopCloser(b)
	}
	return nil
}

// RewindBody rewinds the http body when non-nil.
func (r *Request) RewindBody() error {
	return RewindBody(r.Request, r.body)
}

// NewRequest creates a new wrapped request carrying JSON headers.
// rawBody may be nil, a byte slice, a reader, a ReaderFunc, or any value
// which is then encoded as JSON.
func NewRequest(ctx context.Context, method, url string, rawBody interface{}) (*Request, error) {
	bodyReader, contentLength, err := getBodyReaderAndContentLength(rawBody)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	httpReq.ContentLength = contentLength
	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", fmt.Sprintf("%s; charset=utf-8", jsonContentType))
		httpReq.GetBody = func() (io.ReadCloser, error) {
			b, err := bodyReader()
			if err != nil {
				return nil, err
			}
			return io.NopCloser(b), nil
		}
	}
	httpReq.Header.Set("Accept", jsonContentType)

	req := &Request{bodyReader, httpReq}
	if err = req.RewindBody(); err != nil {
		return nil, err
	}
	return req, nil
}
