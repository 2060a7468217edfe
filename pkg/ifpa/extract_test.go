package ifpa_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

func TestExtractResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"search array", `{"search": [1, 2], "results": [9]}`, []int{1, 2}},
		{"results array", `{"results": [3]}`, []int{3}},
		{"search not an array", `{"search": "x", "results": [4]}`, []int{4}},
		{"root array", `[5, 6]`, []int{5, 6}},
		{"no list", `{"player": {"player_id": 1}}`, nil},
		{"scalar", `42`, nil},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items, err := ifpa.ExtractResults[int](json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestExtractResults_DecodeError(t *testing.T) {
	t.Parallel()

	_, err := ifpa.ExtractResults[int](json.RawMessage(`{"results": ["a"]}`))
	assert.Error(t, err)
}

func TestExtractKey(t *testing.T) {
	t.Parallel()

	extract := ifpa.ExtractKey[ifpa.Ranking]("rankings")

	items, err := extract(json.RawMessage(`{"rankings": [{"player_id": "12", "current_rank": 1, "wppr_points": "850.25"}]}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ifpa.Int(12), items[0].PlayerID)
	assert.InDelta(t, 850.25, items[0].WPPRPoints.Float64(), 0.001)

	missing, err := extract(json.RawMessage(`{"other": []}`))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestExtractFrom(t *testing.T) {
	t.Parallel()

	extract := ifpa.ExtractFrom(func(response ifpa.LeagueResponse) []ifpa.LeagueSession {
		return response.Sessions
	})

	sessions, err := extract(json.RawMessage(`{"tournament_id": 1, "league_session": [{"session_date": "2024-01-01", "player_count": 12}]}`))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, ifpa.Int(12), sessions[0].PlayerCount)
}
