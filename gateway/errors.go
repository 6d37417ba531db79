package gateway

import (
	"errors"
	"fmt"

	"github.com/shuvava/go-users-client/client"
)

var (
	// ErrInvalidArgument is wrapped by every error caused by malformed input,
	// such as a non-positive id.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound matches a 404 response from the backend.
	ErrNotFound = client.ErrNotFound
)

// HTTPStatusError is returned when the backend answers outside the 2xx range.
type HTTPStatusError = client.StatusError

// NetworkError wraps a transport failure: DNS, connection, TLS or a
// cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 2xx response body is not the expected JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
