package middleware

import (
	"fmt"
	"net/http"

	"github.com/shuvava/go-users-client/client"
)

// UserAgentConfig defines the config for UserAgent middleware.
type UserAgentConfig struct {
	// App is the name of the application
	App string `json:"app"`
	// Version is the version of the application
	Version string `json:"version"`
}

// String renders the config as a User-Agent product token.
func (c UserAgentConfig) String() string {
	if c.Version == "" {
		return c.App
	}
	return fmt.Sprintf("%s/%s", c.App, c.Version)
}

// UserAgent is a middleware that sets the User-Agent header of every request.
// An empty App leaves the header untouched.
func UserAgent(cfg UserAgentConfig) client.MiddlewareFunc {
	userAgent := cfg.String()
	return func(_ *http.Client, next client.Responder) client.Responder {
		return func(request *http.Request) (*http.Response, error) {
			if userAgent != "" {
				request.Header.Set("User-Agent", userAgent)
			}
			return next(request)
		}
	}
}
