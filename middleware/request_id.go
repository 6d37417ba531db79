package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shuvava/go-users-client/client"
)

// RequestIDHeader carries the correlation id of an outgoing request.
const RequestIDHeader = "X-Request-ID"

// RequestID is a middleware that tags each request with a random UUID unless
// the caller already set RequestIDHeader.
func RequestID() client.MiddlewareFunc {
	return func(_ *http.Client, next client.Responder) client.Responder {
		return func(request *http.Request) (*http.Response, error) {
			if request.Header.Get(RequestIDHeader) == "" {
				request.Header.Set(RequestIDHeader, uuid.NewString())
			}
			return next(request)
		}
	}
}
