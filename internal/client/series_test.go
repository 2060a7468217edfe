package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

func TestSeriesClient_List(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]route{
		"/series/list": {body: `{"series": [{"code": "NACS", "title": "North American Championship Series", "active": true, "years": ["2024", "2025"]}]}`},
	})
	client := NewTestClient(t, server.URL)

	series, err := client.Series().List().Items(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "NACS", series[0].Code)
	assert.True(t, series[0].Active)
}

func TestSeriesClient_Standings(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]route{
		"/series/NACS/standings": {body: `{"series_code": "NACS", "year": 2024, "overall_results": [
			{"region_code": "OH", "region_name": "Ohio", "player_count": "412", "current_leader_name": "A", "prize_fund": "3200"}
		]}`},
	})
	client := NewTestClient(t, server.URL)

	standings, err := client.Series().Standings(context.Background(), "NACS", 2024)
	require.NoError(t, err)
	require.Len(t, standings.Standings, 1)
	assert.Equal(t, ifpa.Int(412), standings.Standings[0].PlayerCount)
	assert.Equal(t, "year=2024", server.lastQuery())

	_, err = client.Series().Standings(context.Background(), "NACS", 0)
	require.NoError(t, err)
	assert.Empty(t, server.lastQuery())

	_, err = client.Series().Standings(context.Background(), "", 0)
	assert.ErrorIs(t, err, ifpa.ErrEmptyIdentifier)
}

func TestSeriesClient_PlayerCard(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, map[string]route{
		"/series/NACS/player_card/16004": {body: `{"series_code": "NACS", "region_code": "CA", "player_id": 16004, "player_card": [
			{"tournament_id": 1, "tournament_name": "Expo", "points": 44}
		]}`},
		"/series/NACS/player_card/1": {body: `{"series_code": "NACS", "player_card": []}`},
		"/series/NACS/player_card/2": {status: http.StatusNotFound, body: `{"message": "not found"}`},
	})
	client := NewTestClient(t, server.URL)

	card, err := client.Series().PlayerCard(context.Background(), "NACS", 16004, "CA")
	require.NoError(t, err)
	require.Len(t, card.Events, 1)
	assert.Equal(t, "region_code=CA", server.lastQuery())

	for _, playerID := range []int{1, 2} {
		_, err = client.Series().PlayerCard(context.Background(), "NACS", playerID, "CA")

		var notFound *ifpa.SeriesPlayerNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, playerID, notFound.PlayerID)
		assert.Equal(t, "CA", notFound.RegionCode)
	}
}
