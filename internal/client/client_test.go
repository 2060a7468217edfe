package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ifpa.Config{BaseURL: "https://api.example.com"})
		require.Error(t, err)
		assert.Nil(t, client)

		var configErr *ifpa.ConfigurationError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("normalizes config", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ifpa.Config{APIKey: "k", BaseURL: "https://api.example.com//"})
		require.NoError(t, err)

		config := client.Config()
		assert.Equal(t, "https://api.example.com", config.BaseURL)
		assert.Equal(t, ifpa.DefaultTimeout, config.Timeout)

		assert.NotNil(t, client.Players())
		assert.NotNil(t, client.Tournaments())
		assert.NotNil(t, client.Rankings())
		assert.NotNil(t, client.Series())
		assert.NotNil(t, client.Directors())
		assert.NotNil(t, client.Stats())

		require.NoError(t, client.Close())
		require.NoError(t, client.Close())
	})

	t.Run("plain requester without cache", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ifpa.Config{APIKey: "k"})
		require.NoError(t, err)

		_, cached := client.Requester().(*ifpa.CachingRequester)
		assert.False(t, cached)
	})
}

func TestCreateHTTPClientOptions(t *testing.T) {
	t.Parallel()

	config, err := (&ifpa.Config{APIKey: "k"}).Normalize()
	require.NoError(t, err)
	assert.Len(t, createHTTPClientOptions(config), 4)

	config.Debug = true
	config.HTTPClient = &http.Client{}
	config.RetryMax = 2
	assert.Len(t, createHTTPClientOptions(config), 7)
}

func TestClient_Cache(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]route{
		"/stats/overall": {body: `{"type": "Overall", "stats": {"overall_player_count": 143000}}`},
	})

	client, err := New(&ifpa.Config{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Cache:    ifpa.NewMemoryCache(10),
		CacheTTL: time.Minute,
	})
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	for range 3 {
		stats, err := client.Stats().Overall(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ifpa.Int(143000), stats.OverallPlayerCount)
	}

	assert.Equal(t, 1, server.hits())
}
