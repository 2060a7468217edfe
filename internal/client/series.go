package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// SeriesClient implements ifpa.SeriesClient.
type SeriesClient struct {
	requester ifpa.Requester
}

// NewSeriesClient creates a new series client.
func NewSeriesClient(requester ifpa.Requester) *SeriesClient {
	return &SeriesClient{
		requester: requester,
	}
}

var seriesListResource = &ifpa.Resource[ifpa.SeriesListResponse, ifpa.Series]{
	Name:    "series_list",
	Build:   ifpa.Path("/series/list"),
	Extract: ifpa.ExtractKey[ifpa.Series]("series"),
}

// List implements ifpa.SeriesClient.List.
func (c *SeriesClient) List() ifpa.SeriesListQuery {
	return ifpa.NewQuery(c.requester, seriesListResource)
}

// Standings implements ifpa.SeriesClient.Standings. A zero year selects the
// current season.
func (c *SeriesClient) Standings(ctx context.Context, seriesCode string, year int) (*ifpa.SeriesStandingsResponse, error) {
	if seriesCode == "" {
		return nil, fmt.Errorf("series code: %w", ifpa.ErrEmptyIdentifier)
	}

	resource := &ifpa.Resource[ifpa.SeriesStandingsResponse, ifpa.SeriesStanding]{
		Name:    "series_standings",
		Build:   ifpa.Path("/series/" + url.PathEscape(seriesCode) + "/standings"),
		Extract: ifpa.ExtractKey[ifpa.SeriesStanding]("overall_results"),
	}

	query := ifpa.NewQuery(c.requester, resource)
	if year > 0 {
		query = ifpa.WithYear(query, year)
	}

	standings, err := query.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting series standings: %w", err)
	}

	return &standings, nil
}

// PlayerCard implements ifpa.SeriesClient.PlayerCard.
func (c *SeriesClient) PlayerCard(ctx context.Context, seriesCode string, playerID int, regionCode string) (*ifpa.SeriesPlayerCard, error) {
	if seriesCode == "" {
		return nil, fmt.Errorf("series code: %w", ifpa.ErrEmptyIdentifier)
	}

	resource := &ifpa.Resource[ifpa.SeriesPlayerCard, ifpa.TournamentResult]{
		Name:    "series_player_card",
		Build:   ifpa.Path(fmt.Sprintf("/series/%s/player_card/%d", url.PathEscape(seriesCode), playerID)),
		Extract: ifpa.ExtractKey[ifpa.TournamentResult]("player_card"),
	}

	query := ifpa.NewQuery(c.requester, resource)
	if regionCode != "" {
		query = ifpa.WithRegionCode(query, regionCode)
	}

	notFoundErr := &ifpa.SeriesPlayerNotFoundError{SeriesCode: seriesCode, PlayerID: playerID, RegionCode: regionCode}

	card, err := query.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			notFoundErr.Err = err

			return nil, notFoundErr
		}

		return nil, fmt.Errorf("getting series player card: %w", err)
	}

	if card.PlayerID == 0 && len(card.Events) == 0 {
		return nil, notFoundErr
	}

	return &card, nil
}
