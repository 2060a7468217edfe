package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

const rankingsBody = `{"ranking_type": "MAIN", "rankings": [
	{"player_id": 16004, "first_name": "Keith", "last_name": "Elwin", "current_rank": 1, "wppr_points": "1400.1"}
]}`

func TestRankingsClient_Paths(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]route{
		"/rankings/wppr":        {body: rankingsBody},
		"/rankings/women/open":  {body: rankingsBody},
		"/rankings/women/women": {body: rankingsBody},
		"/rankings/youth":       {body: rankingsBody},
		"/rankings/pro/open":    {body: rankingsBody},
		"/rankings/country":     {body: rankingsBody},
	})
	client := NewTestClient(t, server.URL)
	rankings := client.Rankings()

	queries := map[string]ifpa.RankingsQuery{
		"wppr":         rankings.WPPR(),
		"women open":   rankings.Women(""),
		"women women":  rankings.Women(ifpa.RankingDivisionWomen),
		"youth":        rankings.Youth(),
		"pro open":     rankings.Pro(ifpa.RankingDivisionOpen),
		"country (US)": rankings.Country("US"),
	}

	for name, query := range queries {
		items, err := query.Items(context.Background())
		require.NoError(t, err, name)
		require.Len(t, items, 1, name)
		assert.Equal(t, ifpa.Int(16004), items[0].PlayerID, name)
	}

	assert.Equal(t, ifpa.Params{ifpa.ParamCountry: "US"}, rankings.Country("US").Params())
}

func TestRankingsClient_Pagination(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]route{"/rankings/wppr": {body: rankingsBody}})
	client := NewTestClient(t, server.URL)

	items, err := client.Rankings().WPPR().All(context.Background(), &ifpa.PaginationOptions{PageSize: 100})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "count=100&start_pos=0", server.lastQuery())

	_, err = ifpa.WithName(client.Rankings().WPPR(), "Keith").Items(context.Background())

	var validationErr *ifpa.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
