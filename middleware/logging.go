package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shuvava/go-users-client/client"
)

// Logging is a middleware that writes one entry per round trip.
// Transport failures are logged at warn level, everything else at debug.
// Register it after RequestID to get the id into the entry.
func Logging(log *zap.Logger) client.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(_ *http.Client, next client.Responder) client.Responder {
		return func(request *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next(request)

			fields := []zap.Field{
				zap.String("method", request.Method),
				zap.String("url", request.URL.String()),
				zap.Duration("elapsed", time.Since(start)),
			}
			if id := request.Header.Get(RequestIDHeader); id != "" {
				fields = append(fields, zap.String("request_id", id))
			}
			if err != nil {
				log.Warn("http request failed", append(fields, zap.Error(err))...)
				return resp, err
			}
			log.Debug("http request", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		}
	}
}
