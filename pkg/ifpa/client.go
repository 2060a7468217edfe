package ifpa

import (
	"context"
)

// Builders returned by the resource clients.
type (
	PlayerSearchQuery      = PagedQuery[PlayerSearchResponse, PlayerSearchResult]
	PlayerResultsQuery     = Query[PlayerResultsResponse, TournamentResult]
	TournamentSearchQuery  = PagedQuery[TournamentSearchResponse, Tournament]
	TournamentResultsQuery = Query[TournamentResultsResponse, TournamentResult]
	RankingsQuery          = PagedQuery[RankingsResponse, Ranking]
	SeriesListQuery        = Query[SeriesListResponse, Series]
	DirectorSearchQuery    = PagedQuery[DirectorSearchResponse, Director]
	CountryPlayersQuery    = Query[CountryPlayersResponse, CountryPlayers]
)

// Client is the main interface for interacting with the IFPA API.
type Client interface {
	Players() PlayersClient
	Tournaments() TournamentsClient
	Rankings() RankingsClient
	Series() SeriesClient
	Directors() DirectorsClient
	Stats() StatsClient

	// Requester exposes the transport, with caching applied when configured.
	Requester() Requester

	// Close releases pooled connections. It is safe to call more than once.
	Close() error
}

// PlayersClient defines operations for players.
type PlayersClient interface {
	Get(ctx context.Context, playerID int) (*Player, error)
	GetMany(ctx context.Context, playerIDs []int) ([]Player, error)
	Search() PlayerSearchQuery
	Results(playerID int, system RankingSystem, resultType ResultType) PlayerResultsQuery
	PvP(ctx context.Context, playerID, opponentID int) (*PvPResponse, error)
}

// TournamentsClient defines operations for tournaments.
type TournamentsClient interface {
	Get(ctx context.Context, tournamentID int) (*Tournament, error)
	Search() TournamentSearchQuery
	Results(tournamentID int) TournamentResultsQuery
	League(ctx context.Context, tournamentID int) (*LeagueResponse, error)
}

// RankingsClient defines the ranking lists.
type RankingsClient interface {
	WPPR() RankingsQuery
	Women(division RankingDivision) RankingsQuery
	Youth() RankingsQuery
	Pro(division RankingDivision) RankingsQuery
	Country(country string) RankingsQuery
}

// SeriesClient defines operations for championship series.
type SeriesClient interface {
	List() SeriesListQuery
	Standings(ctx context.Context, seriesCode string, year int) (*SeriesStandingsResponse, error)
	PlayerCard(ctx context.Context, seriesCode string, playerID int, regionCode string) (*SeriesPlayerCard, error)
}

// DirectorsClient defines operations for tournament directors.
type DirectorsClient interface {
	Get(ctx context.Context, directorID int) (*Director, error)
	Search() DirectorSearchQuery
}

// StatsClient defines the aggregate statistics endpoints.
type StatsClient interface {
	Overall(ctx context.Context) (*OverallStats, error)
	CountryPlayers() CountryPlayersQuery
}
