package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// We need to consume response bodies to maintain http connections, but
// limit the size we consume to respBodyReadLimit.
const respBodyReadLimit = 1024

// ErrNotFound matches, through errors.Is, every StatusError carrying 404.
var ErrNotFound = errors.New("not found")

// StatusError is returned for a response outside the 2xx range.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Method == "" {
		return fmt.Sprintf("unexpected HTTP status %s", status)
	}
	return fmt.Sprintf("%s %s: unexpected HTTP status %s", e.Method, e.URL, status)
}

// Is reports a 404 StatusError as ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// AssertStatusCode returns *StatusError unless resp carries a 2xx status.
func AssertStatusCode(resp *http.Response) error {
	if resp == nil {
		return errors.New("nil http response")
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	err := &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
	if resp.Request != nil {
		err.Method = resp.Request.Method
		err.URL = resp.Request.URL.String()
	}
	return err
}

// ReadResponse checks the status of resp and decodes its JSON body into v.
// A nil v discards the body. The body is always closed.
func ReadResponse(resp *http.Response, v interface{}) error {
	if resp == nil {
		return AssertStatusCode(resp)
	}
	defer DrainBody(resp.Body)
	if err := AssertStatusCode(resp); err != nil {
		return err
	}
	if v == nil || resp.Body == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// DrainBody reads what is left of body, up to a limit, so the connection can
// be reused, then closes it.
func DrainBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer func() {
		_ = body.Close()
	}()
	_, _ = io.Copy(io.Discard, io.LimitReader(body, respBodyReadLimit))
}
