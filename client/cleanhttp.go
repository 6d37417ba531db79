package client

import (
	"net"
	"net/http"
	"runtime"
	"time"
)

// Responder is callback that receive and http request and return a response.
type Responder func(*http.Request) (*http.Response, error)

// DefaultTransport returns a new http.Transport with similar default values to
// http.DefaultTransport, but with idle connections and keepalives disabled.
func DefaultTransport() *http.Transport {
	transport := DefaultPooledTransport()
	transport.DisableKeepAlives = true
	transport.MaxIdleConnsPerHost = -1
	return transport
}

// DefaultPooledTransport returns a new http.Transport with similar default
// values to http.DefaultTransport. The users gateway talks to a single host,
// so the pooled variant is what it uses by default.
func DefaultPooledTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}
}

// NewHTTPClient creates http.Client with provided transport
func NewHTTPClient(transport http.RoundTripper) *http.Client {
	if transport == nil {
		return http.DefaultClient
	}
	return &http.Client{
		Transport: transport,
	}
}
