package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

var (
	// ErrNoResponderFound is returned when no responders are found for a given HTTP method and URL.
	ErrNoResponderFound = errors.New("no responder found")
)

// MockTransport implements http.RoundTripper, which fulfills single http requests issued by
// an http.Client. This implementation doesn't actually make the call, instead deferring to
// the registered list of responders.
type MockTransport struct {
	mu         sync.Mutex
	responders map[string]Responder
	calls      map[string]int
}

// NewMockTransport creates new instance of MockTransport
func NewMockTransport() *MockTransport {
	return &MockTransport{
		responders: map[string]Responder{},
		calls:      map[string]int{},
	}
}

// NewRoundTripKey creates new key for MockTransport responder mapping
func NewRoundTripKey(method, url string) string {
	return fmt.Sprintf("%s %s", method, url)
}

// RoundTrip is required to implement http.RoundTripper. Instead of fulfilling the given request,
// the internal list of responders is consulted to handle the request. If no responder is found
// ErrNoResponderFound is returned, which is the equivalent of a network error.
func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := NewRoundTripKey(req.Method, req.URL.String())

	m.mu.Lock()
	r, ok := m.responders[key]
	m.calls[key]++
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNoResponderFound)
	}
	return r(req)
}

// RegisterResponder adds a new responder, associated with a given HTTP method and URL. When a
// request comes in that matches, the responder will be called and the response returned to the client.
func (m *MockTransport) RegisterResponder(method, url string, responder Responder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responders[NewRoundTripKey(method, url)] = responder
}

// Calls returns how many requests were sent for method and url.
func (m *MockTransport) Calls(method, url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[NewRoundTripKey(method, url)]
}

// NewStringResponder creates a Responder answering with status and body.
func NewStringResponder(status int, body string) Responder {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
			// Must be set to non-nil value or it panics
			Header:  http.Header{"Content-Type": []string{jsonContentType}},
			Request: req,
		}, nil
	}
}

// NewJSONResponder creates a Responder answering with status and v encoded as JSON.
func NewJSONResponder(status int, v interface{}) Responder {
	b, err := json.Marshal(v)
	if err != nil {
		return NewErrorResponder(err)
	}
	return NewStringResponder(status, string(b))
}

// NewErrorResponder creates a Responder failing every request with err.
func NewErrorResponder(err error) Responder {
	return func(*http.Request) (*http.Response, error) {
		return nil, err
	}
}
