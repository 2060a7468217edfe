package commands_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/ifpa-client/cmd/ifpa/commands"
)

const testAPIKey = "test-key-1234"

// fakeAPI serves canned IFPA responses keyed by path and counts requests.
type fakeAPI struct {
	*httptest.Server

	requests atomic.Int32
}

func newFakeAPI(t *testing.T, routes map[string]string) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.requests.Add(1)
		assert.Equal(t, testAPIKey, r.Header.Get("X-API-Key"))

		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "not found"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(api.Close)

	return api
}

func (a *fakeAPI) hits() int {
	return int(a.requests.Load())
}

// isolate points HOME at an empty directory so no real config is read.
func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("IFPA_API_KEY", "")
}

// execute runs the root command with args and returns what it wrote to
// stdout. Log output is discarded.
func execute(t *testing.T, app *commands.App, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := commands.NewRootCommand(app, "1.2.3", "abc123", "2026-01-01")
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

// apiArgs prefixes args with the flags pointing at api.
func apiArgs(api *fakeAPI, args ...string) []string {
	return append([]string{"--base-url", api.URL, "--api-key", testAPIKey}, args...)
}
