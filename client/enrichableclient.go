package client

import (
	"net/http"
	"sync"
)

// MiddlewareFunc defines a function to process middleware.
type MiddlewareFunc func(*http.Client, Responder) Responder

// Client is a wrapper on the top of http.Client allowing add rich functions.
// Client.Client is the http.Client to hand to consumers; every request sent
// through it runs the middleware chain registered with Use.
type Client struct {
	transport        http.RoundTripper
	defaultResponder Responder
	middleware       []MiddlewareFunc

	mu      sync.RWMutex
	handler Responder

	Client *http.Client
}

// NewClient creates Client on top of provided transport
func NewClient(transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	c := &Client{
		transport:        transport,
		defaultResponder: transport.RoundTrip,
	}
	c.handler = c.defaultResponder
	c.Client = NewHTTPClient(c)

	return c
}

// DefaultPooledClient returns a new Client with similar default values to
// http.Client, but with a shared Transport. Do not use this function for
// transient clients as it can leak file descriptors over time. Only use this
// for clients that will be re-used for the same host(s).
func DefaultPooledClient() *Client {
	return NewClient(DefaultPooledTransport())
}

// Use adds middleware to the chain which is run on processing request.
// Middleware registered first is the outermost one.
func (c *Client) Use(middleware ...MiddlewareFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.middleware = append(c.middleware, middleware...)
	c.handler = applyMiddleware(c.Client, c.defaultResponder, c.middleware...)
}

// RoundTrip executes a single HTTP transaction, returning a Response for the provided Request
func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	c.mu.RLock()
	h := c.handler
	c.mu.RUnlock()
	return h(req)
}

// Do sends req through the middleware chain using the wrapped http.Client.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.Client.Do(req)
}

// CloseIdleConnections closes idle connections of the underlying transport.
// http.Client.CloseIdleConnections lands here because Client is its transport.
func (c *Client) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if tr, ok := c.transport.(closeIdler); ok {
		tr.CloseIdleConnections()
	}
}

func applyMiddleware(c *http.Client, h Responder, middleware ...MiddlewareFunc) Responder {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](c, h)
	}
	return h
}
