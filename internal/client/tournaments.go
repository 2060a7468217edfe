package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// TournamentsClient implements ifpa.TournamentsClient.
type TournamentsClient struct {
	requester ifpa.Requester
}

// NewTournamentsClient creates a new tournaments client.
func NewTournamentsClient(requester ifpa.Requester) *TournamentsClient {
	return &TournamentsClient{
		requester: requester,
	}
}

var tournamentSearchResource = &ifpa.Resource[ifpa.TournamentSearchResponse, ifpa.Tournament]{
	Name:    "tournament_search",
	Build:   ifpa.Path("/tournament/search"),
	Extract: ifpa.ExtractKey[ifpa.Tournament]("tournaments"),
	Schema:  tournamentSearchSchema,
}

// Get implements ifpa.TournamentsClient.Get.
func (c *TournamentsClient) Get(ctx context.Context, tournamentID int) (*ifpa.Tournament, error) {
	resource := &ifpa.Resource[ifpa.Tournament, ifpa.Tournament]{
		Name:  "tournament",
		Build: ifpa.Path(fmt.Sprintf("/tournament/%d", tournamentID)),
	}

	tournament, err := ifpa.NewQuery(c.requester, resource).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting tournament: %w", notFound("tournament", tournamentID, err))
	}

	if tournament.TournamentID == 0 {
		return nil, &ifpa.NotFoundError{Resource: "tournament", ID: strconv.Itoa(tournamentID)}
	}

	return &tournament, nil
}

// Search implements ifpa.TournamentsClient.Search.
func (c *TournamentsClient) Search() ifpa.TournamentSearchQuery {
	return ifpa.NewPagedQuery(c.requester, tournamentSearchResource, ifpa.DefaultPaging)
}

// Results implements ifpa.TournamentsClient.Results.
func (c *TournamentsClient) Results(tournamentID int) ifpa.TournamentResultsQuery {
	resource := &ifpa.Resource[ifpa.TournamentResultsResponse, ifpa.TournamentResult]{
		Name:  "tournament_results",
		Build: ifpa.Path(fmt.Sprintf("/tournament/%d/results", tournamentID)),
	}

	return ifpa.NewQuery(c.requester, resource)
}

// League implements ifpa.TournamentsClient.League.
func (c *TournamentsClient) League(ctx context.Context, tournamentID int) (*ifpa.LeagueResponse, error) {
	resource := &ifpa.Resource[ifpa.LeagueResponse, ifpa.LeagueSession]{
		Name:    "tournament_league",
		Build:   ifpa.Path(fmt.Sprintf("/tournament/%d/league", tournamentID)),
		Extract: ifpa.ExtractKey[ifpa.LeagueSession]("league_session"),
	}

	league, err := ifpa.NewQuery(c.requester, resource).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, &ifpa.TournamentNotLeagueError{TournamentID: tournamentID, Err: err}
		}

		return nil, fmt.Errorf("getting league: %w", err)
	}

	if len(league.Sessions) == 0 {
		return nil, &ifpa.TournamentNotLeagueError{TournamentID: tournamentID}
	}

	return &league, nil
}
