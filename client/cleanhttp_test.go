package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTransport(t *testing.T) {
	t.Run("Disables keepalives and idle connections", func(t *testing.T) {
		transport := DefaultTransport()
		assert.True(t, transport.DisableKeepAlives)
		assert.Equal(t, -1, transport.MaxIdleConnsPerHost)
		assert.NotNil(t, transport.DialContext)
	})
	t.Run("Pooled transport keeps connections alive", func(t *testing.T) {
		transport := DefaultPooledTransport()
		assert.False(t, transport.DisableKeepAlives)
		assert.Greater(t, transport.MaxIdleConnsPerHost, 0)
		assert.Equal(t, 100, transport.MaxIdleConns)
	})
	t.Run("Each call returns a fresh transport", func(t *testing.T) {
		assert.NotSame(t, DefaultTransport(), DefaultTransport())
		assert.NotSame(t, DefaultPooledTransport(), DefaultPooledTransport())
	})
}

func TestNewHTTPClient(t *testing.T) {
	t.Run("Falls back to the default client", func(t *testing.T) {
		assert.Same(t, http.DefaultClient, NewHTTPClient(nil))
	})
	t.Run("Uses the given transport", func(t *testing.T) {
		transport := DefaultTransport()
		c := NewHTTPClient(transport)
		assert.Same(t, transport, c.Transport)
	})
}
