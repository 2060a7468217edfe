package client

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// route is a canned response for one request path.
type route struct {
	status int
	body   string
}

// testServer serves canned responses keyed by URL path and records the
// requests it received.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func newTestServer(t *testing.T, routes map[string]route) *testServer {
	t.Helper()

	server := &testServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		server.mu.Lock()
		server.requests = append(server.requests, request)
		server.mu.Unlock()

		assert.Equal(t, "test-key", request.Header.Get("X-API-Key"))

		canned, ok := routes[request.URL.Path]
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message": "no route"}`))

			return
		}

		status := canned.status
		if status == 0 {
			status = http.StatusOK
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(canned.body))
	}))

	t.Cleanup(server.Close)

	return server
}

func (s *testServer) hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

func (s *testServer) lastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return ""
	}

	return s.requests[len(s.requests)-1].URL.RawQuery
}

// NewTestClient creates a client for the given base URL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&ifpa.Config{APIKey: "test-key", BaseURL: baseURL})
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client
}
