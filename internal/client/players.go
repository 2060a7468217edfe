package client

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// PlayersClient implements ifpa.PlayersClient.
type PlayersClient struct {
	requester ifpa.Requester
}

// NewPlayersClient creates a new players client.
func NewPlayersClient(requester ifpa.Requester) *PlayersClient {
	return &PlayersClient{
		requester: requester,
	}
}

var playerSearchResource = &ifpa.Resource[ifpa.PlayerSearchResponse, ifpa.PlayerSearchResult]{
	Name:   "player_search",
	Build:  ifpa.Path("/player/search"),
	Schema: playerSearchSchema,
}

// Get implements ifpa.PlayersClient.Get.
func (c *PlayersClient) Get(ctx context.Context, playerID int) (*ifpa.Player, error) {
	resource := &ifpa.Resource[ifpa.PlayerResponse, ifpa.Player]{
		Name:    "player",
		Build:   ifpa.Path(fmt.Sprintf("/player/%d", playerID)),
		Extract: ifpa.ExtractKey[ifpa.Player]("player"),
	}

	players, err := ifpa.NewQuery(c.requester, resource).Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", notFound("player", playerID, err))
	}

	if len(players) == 0 {
		return nil, &ifpa.NotFoundError{Resource: "player", ID: strconv.Itoa(playerID)}
	}

	return &players[0], nil
}

// GetMany implements ifpa.PlayersClient.GetMany. Lookups run concurrently;
// results keep the order of playerIDs and the first failure cancels the rest.
func (c *PlayersClient) GetMany(ctx context.Context, playerIDs []int) ([]ifpa.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	players := make([]ifpa.Player, len(playerIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.DefaultConcurrencyLimit)

	for i, playerID := range playerIDs {
		g.Go(func() error {
			player, err := c.Get(ctx, playerID)
			if err != nil {
				return err
			}

			players[i] = *player

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return players, nil
}

// Search implements ifpa.PlayersClient.Search.
func (c *PlayersClient) Search() ifpa.PlayerSearchQuery {
	return ifpa.NewPagedQuery(c.requester, playerSearchResource, ifpa.DefaultPaging)
}

// Results implements ifpa.PlayersClient.Results.
func (c *PlayersClient) Results(playerID int, system ifpa.RankingSystem, resultType ifpa.ResultType) ifpa.PlayerResultsQuery {
	if system == "" {
		system = ifpa.RankingSystemMain
	}

	if resultType == "" {
		resultType = ifpa.ResultTypeActive
	}

	resource := &ifpa.Resource[ifpa.PlayerResultsResponse, ifpa.TournamentResult]{
		Name:   "player_results",
		Build:  ifpa.Path(fmt.Sprintf("/player/%d/results/%s/%s", playerID, system, resultType)),
		Schema: playerResultsSchema,
	}

	return ifpa.NewQuery(c.requester, resource)
}

// PvP implements ifpa.PlayersClient.PvP.
func (c *PlayersClient) PvP(ctx context.Context, playerID, opponentID int) (*ifpa.PvPResponse, error) {
	resource := &ifpa.Resource[ifpa.PvPResponse, ifpa.PvPRecord]{
		Name:    "pvp",
		Build:   ifpa.Path(fmt.Sprintf("/player/%d/pvp/%d", playerID, opponentID)),
		Extract: ifpa.ExtractKey[ifpa.PvPRecord]("pvp"),
	}

	pvp, err := ifpa.NewQuery(c.requester, resource).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, &ifpa.PlayersNeverMetError{PlayerID: playerID, OpponentID: opponentID, Err: err}
		}

		return nil, fmt.Errorf("comparing players: %w", err)
	}

	if len(pvp.Records) == 0 {
		return nil, &ifpa.PlayersNeverMetError{PlayerID: playerID, OpponentID: opponentID}
	}

	return &pvp, nil
}
