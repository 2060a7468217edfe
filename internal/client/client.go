package client

import (
	"errors"
	"io"
	"sync"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/internal/http"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// Client implements the ifpa.Client interface.
type Client struct {
	httpClient *http.Client
	requester  ifpa.Requester
	config     *ifpa.Config
	closeOnce  sync.Once
	closeErr   error

	// Resource clients
	players     ifpa.PlayersClient
	tournaments ifpa.TournamentsClient
	rankings    ifpa.RankingsClient
	series      ifpa.SeriesClient
	directors   ifpa.DirectorsClient
	stats       ifpa.StatsClient
}

// createHTTPClientOptions builds HTTP client options from a normalized config.
func createHTTPClientOptions(config *ifpa.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithLogger(config.Logger),
		http.WithTimeout(config.Timeout),
		http.WithUserAgent(config.UserAgent),
		http.WithValidation(config.ValidatesRequests()),
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new IFPA API client. The config is validated first, so a
// missing API key fails here without any network activity.
func New(config *ifpa.Config) (*Client, error) {
	normalized, err := config.Normalize()
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(normalized.BaseURL, normalized.APIKey, createHTTPClientOptions(normalized)...)

	var requester ifpa.Requester = httpClient
	if normalized.Cache != nil {
		requester = ifpa.NewCachingRequester(httpClient, normalized.Cache, normalized.CacheTTL)
	}

	client := &Client{
		httpClient: httpClient,
		requester:  requester,
		config:     normalized,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.players = NewPlayersClient(c.requester)
	c.tournaments = NewTournamentsClient(c.requester)
	c.rankings = NewRankingsClient(c.requester)
	c.series = NewSeriesClient(c.requester)
	c.directors = NewDirectorsClient(c.requester)
	c.stats = NewStatsClient(c.requester)
}

// Players implements ifpa.Client.Players.
func (c *Client) Players() ifpa.PlayersClient {
	return c.players
}

// Tournaments implements ifpa.Client.Tournaments.
func (c *Client) Tournaments() ifpa.TournamentsClient {
	return c.tournaments
}

// Rankings implements ifpa.Client.Rankings.
func (c *Client) Rankings() ifpa.RankingsClient {
	return c.rankings
}

// Series implements ifpa.Client.Series.
func (c *Client) Series() ifpa.SeriesClient {
	return c.series
}

// Directors implements ifpa.Client.Directors.
func (c *Client) Directors() ifpa.DirectorsClient {
	return c.directors
}

// Stats implements ifpa.Client.Stats.
func (c *Client) Stats() ifpa.StatsClient {
	return c.stats
}

// Requester implements ifpa.Client.Requester.
func (c *Client) Requester() ifpa.Requester {
	return c.requester
}

// Config returns the normalized configuration.
func (c *Client) Config() ifpa.Config {
	return *c.config
}

// Close implements ifpa.Client.Close. A cache holding a connection, such as
// the NATS cache, is closed too.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.httpClient.Close()

		if closer, ok := c.config.Cache.(io.Closer); ok {
			c.closeErr = errors.Join(c.closeErr, closer.Close())
		}
	})

	return c.closeErr
}

var _ ifpa.Client = (*Client)(nil)
