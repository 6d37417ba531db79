package middleware_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/shuvava/go-users-client/client"
)

const url = "https://www.example.com/users"

type httpMock struct {
	mu      sync.Mutex
	headers []http.Header // headers of every request seen
	mock    *client.MockTransport
}

func (m *httpMock) last() http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.headers) == 0 {
		return nil
	}
	return m.headers[len(m.headers)-1]
}

func createGetMock(url string, statusCode int, body string) *httpMock {
	m := &httpMock{
		mock: client.NewMockTransport(),
	}
	respond := client.NewStringResponder(statusCode, body)
	m.mock.RegisterResponder(http.MethodGet, url,
		func(request *http.Request) (*http.Response, error) {
			m.mu.Lock()
			m.headers = append(m.headers, request.Header.Clone())
			m.mu.Unlock()
			return respond(request)
		})
	return m
}

func doGet(t testing.TB, c *client.Client, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("did not expect an error but got one %v", err)
	}
	client.DrainBody(resp.Body)
	return resp
}
