package client

import (
	"io"
	"net/http"
	"testing"
)

var (
	url            = "https://www.example.com/users"
	wantStatusCode = http.StatusOK
	wantBody       = `[]`
)

func TestWithOutMiddleware(t *testing.T) {
	mock := createMock(url, wantStatusCode, wantBody)

	t.Run("Should successfully process request without middleware", func(t *testing.T) {
		richClient := NewClient(mock)
		response, err := richClient.Client.Get(url)
		assertResponse(t, response, err)
	})
}

func TestMiddleware(t *testing.T) {
	mock := createMock(url, wantStatusCode, wantBody)
	richClient := NewClient(mock)
	richClient.Use(createMiddleware(http.MethodHead, http.StatusConflict))
	client := richClient.Client

	t.Run("Should use default responder", func(t *testing.T) {
		response, err := client.Get(url)
		assertResponse(t, response, err)
	})
	t.Run("Should use middleware responder", func(t *testing.T) {
		response, err := client.Head(url)
		if err != nil {
			t.Fatalf("did not expect an error but got one %v", err)
		}
		if response.StatusCode != http.StatusConflict {
			t.Errorf("got %d, wantStatusCode %d", response.StatusCode, http.StatusConflict)
		}
	})
}

func TestMultipleMiddleware(t *testing.T) {
	mock := createMock(url, wantStatusCode, wantBody)
	richClient := NewClient(mock)
	richClient.Use(createMiddleware(http.MethodHead, http.StatusBadGateway))
	richClient.Use(createMiddleware(http.MethodHead, http.StatusConflict))

	t.Run("Should apply middleware from first to last", func(t *testing.T) {
		response, err := richClient.Do(mustRequest(t, http.MethodHead, url))
		if err != nil {
			t.Fatalf("did not expect an error but got one %v", err)
		}
		if response.StatusCode != http.StatusBadGateway {
			t.Errorf("got %d, wantStatusCode %d", response.StatusCode, http.StatusBadGateway)
		}
	})
}

func TestCloseIdleConnections(t *testing.T) {
	t.Run("Should reach the underlying transport", func(t *testing.T) {
		tr := &idleTransport{}
		richClient := NewClient(tr)
		richClient.Client.CloseIdleConnections()
		if tr.closed != 1 {
			t.Errorf("got %d closes, want 1", tr.closed)
		}
	})
}

type idleTransport struct {
	closed int
}

func (t *idleTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, ErrNoResponderFound
}

func (t *idleTransport) CloseIdleConnections() {
	t.closed++
}

func assertResponse(t testing.TB, response *http.Response, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("did not expect an error but got one %v", err)
	}
	if response.StatusCode != wantStatusCode {
		t.Errorf("got %d, wantStatusCode %d", response.StatusCode, wantStatusCode)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("did not expect an error but got one %v", err)
	}
	if string(body) != wantBody {
		t.Errorf("got %q, wantBody %q", string(body), wantBody)
	}
}

func createMiddleware(method string, statusCode int) MiddlewareFunc {
	return func(c *http.Client, next Responder) Responder {
		return func(request *http.Request) (*http.Response, error) {
			if request.Method == method {
				return NewStringResponder(statusCode, "")(request)
			}
			return next(request)
		}
	}
}

func createMock(url string, statusCode int, body string) *MockTransport {
	mock := NewMockTransport()
	mock.RegisterResponder(http.MethodGet, url, NewStringResponder(statusCode, body))
	return mock
}

func mustRequest(t testing.TB, method, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return req
}
