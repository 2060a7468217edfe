package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// StatsClient implements ifpa.StatsClient.
type StatsClient struct {
	requester ifpa.Requester
}

// NewStatsClient creates a new stats client.
func NewStatsClient(requester ifpa.Requester) *StatsClient {
	return &StatsClient{
		requester: requester,
	}
}

var (
	overallStatsResource = &ifpa.Resource[ifpa.OverallStatsResponse, ifpa.OverallStats]{
		Name:  "stats_overall",
		Build: ifpa.Path("/stats/overall"),
	}

	countryPlayersResource = &ifpa.Resource[ifpa.CountryPlayersResponse, ifpa.CountryPlayers]{
		Name:    "stats_country_players",
		Build:   ifpa.Path("/stats/country_players"),
		Extract: ifpa.ExtractKey[ifpa.CountryPlayers]("stats"),
	}
)

// Overall implements ifpa.StatsClient.Overall.
func (c *StatsClient) Overall(ctx context.Context) (*ifpa.OverallStats, error) {
	response, err := ifpa.NewQuery(c.requester, overallStatsResource).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting overall stats: %w", err)
	}

	return &response.Stats, nil
}

// CountryPlayers implements ifpa.StatsClient.CountryPlayers.
func (c *StatsClient) CountryPlayers() ifpa.CountryPlayersQuery {
	return ifpa.NewQuery(c.requester, countryPlayersResource)
}
