package client

import (
	"net/http"
)

// HTTPClient is the subset of *http.Client the users gateway depends on.
// Both http.Client and the Client of this package (through its Client field)
// satisfy it.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
	CloseIdleConnections()
}
