package ifpa_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want float64
	}{
		{`12.5`, 12.5},
		{`"12.5"`, 12.5},
		{`" 7 "`, 7},
		{`""`, 0},
		{`null`, 0},
	}

	for _, tt := range tests {
		var n ifpa.Number

		require.NoError(t, json.Unmarshal([]byte(tt.raw), &n), tt.raw)
		assert.InDelta(t, tt.want, n.Float64(), 0.0001, tt.raw)
	}

	var n ifpa.Number
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &n))
}

func TestInt_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var player ifpa.PlayerSearchResult

	err := json.Unmarshal([]byte(`{"player_id": "16004", "first_name": "Keith", "last_name": "Elwin", "wppr_rank": 3}`), &player)
	require.NoError(t, err)
	assert.Equal(t, ifpa.Int(16004), player.PlayerID)
	assert.Equal(t, ifpa.Int(3), player.WPPRRank)

	var i ifpa.Int
	assert.Error(t, json.Unmarshal([]byte(`"first"`), &i))
	require.NoError(t, json.Unmarshal([]byte(`null`), &i))
	assert.Equal(t, ifpa.Int(0), i)
}

func TestPlayer_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Zach Sharpe", (&ifpa.Player{FirstName: "Zach", LastName: "Sharpe"}).Name())
	assert.Equal(t, "Sharpe", (&ifpa.Player{LastName: "Sharpe"}).Name())
}

func TestPlayerResponse_Decode(t *testing.T) {
	t.Parallel()

	raw := `{"player": [{
		"player_id": 8,
		"first_name": "Roger",
		"last_name": "Sharpe",
		"country_code": "US",
		"player_stats": [{"system": "MAIN", "current_rank": "125", "current_points": "412.77"}]
	}]}`

	var response ifpa.PlayerResponse

	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	require.Len(t, response.Player, 1)

	player := response.Player[0]
	assert.Equal(t, ifpa.Int(8), player.PlayerID)
	require.Len(t, player.Stats, 1)
	assert.Equal(t, ifpa.Int(125), player.Stats[0].CurrentRank)
	assert.InDelta(t, 412.77, player.Stats[0].CurrentPoints.Float64(), 0.001)
}
