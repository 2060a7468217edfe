package ifpa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float that IFPA may send either as a JSON number or a numeric
// string. An empty string or null decodes to zero.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	text, err := unquoteNumeric(data)
	if err != nil || text == "" {
		*n = 0

		return err
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("decoding number %s: %w", data, err)
	}

	*n = Number(value)

	return nil
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// Int is an integer that IFPA may send either as a JSON number or a numeric
// string.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	text, err := unquoteNumeric(data)
	if err != nil || text == "" {
		*i = 0

		return err
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("decoding integer %s: %w", data, err)
	}

	*i = Int(value)

	return nil
}

func unquoteNumeric(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string

		err := json.Unmarshal(data, &text)
		if err != nil {
			return "", fmt.Errorf("decoding numeric string: %w", err)
		}

		return strings.TrimSpace(text), nil
	}

	return string(data), nil
}

// RankingSystem selects a ranking for player results.
type RankingSystem string

const (
	RankingSystemMain  RankingSystem = "MAIN"
	RankingSystemWomen RankingSystem = "WOMEN"
	RankingSystemYouth RankingSystem = "YOUTH"
	RankingSystemPro   RankingSystem = "PRO"
)

// ResultType selects active, inactive or nonactive results.
type ResultType string

const (
	ResultTypeActive    ResultType = "ACTIVE"
	ResultTypeInactive  ResultType = "INACTIVE"
	ResultTypeNonActive ResultType = "NONACTIVE"
)

// RankingDivision selects the open or women's division of a ranking.
type RankingDivision string

const (
	RankingDivisionOpen  RankingDivision = "OPEN"
	RankingDivisionWomen RankingDivision = "WOMEN"
)

// PlayerStat is one ranking system entry of a player's profile.
type PlayerStat struct {
	System            string `json:"system"                       yaml:"system"`
	CurrentRank       Int    `json:"current_rank"                 yaml:"current_rank"`
	CurrentPoints     Number `json:"current_points"               yaml:"current_points"`
	BestFinish        Int    `json:"best_finish"                  yaml:"best_finish"`
	BestFinishCount   Int    `json:"best_finish_count"            yaml:"best_finish_count"`
	EventCount        Int    `json:"total_events_all_time"        yaml:"total_events_all_time"`
	ActiveEventsCount Int    `json:"total_active_events"          yaml:"total_active_events"`
	Rating            Number `json:"ratings_value,omitempty"      yaml:"ratings_value,omitempty"`
	Efficiency        Number `json:"efficiency_percent,omitempty" yaml:"efficiency_percent,omitempty"`
}

// Player is a full player profile.
type Player struct {
	PlayerID       Int          `json:"player_id"               yaml:"player_id"`
	FirstName      string       `json:"first_name"              yaml:"first_name"`
	LastName       string       `json:"last_name"               yaml:"last_name"`
	City           string       `json:"city,omitempty"          yaml:"city,omitempty"`
	StateProv      string       `json:"stateprov,omitempty"     yaml:"stateprov,omitempty"`
	CountryName    string       `json:"country_name,omitempty"  yaml:"country_name,omitempty"`
	CountryCode    string       `json:"country_code,omitempty"  yaml:"country_code,omitempty"`
	Initials       string       `json:"initials,omitempty"      yaml:"initials,omitempty"`
	Age            Int          `json:"age,omitempty"           yaml:"age,omitempty"`
	ProfilePhoto   string       `json:"profile_photo,omitempty" yaml:"profile_photo,omitempty"`
	IFPARegistered bool         `json:"ifpa_registered"         yaml:"ifpa_registered"`
	Stats          []PlayerStat `json:"player_stats,omitempty"  yaml:"player_stats,omitempty"`
}

// Name returns "First Last".
func (p *Player) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PlayerResponse wraps single-player lookups.
type PlayerResponse struct {
	Player []Player `json:"player" yaml:"player"`
}

// PlayerSearchResult is one row of a player search.
type PlayerSearchResult struct {
	PlayerID    Int    `json:"player_id"              yaml:"player_id"`
	FirstName   string `json:"first_name"             yaml:"first_name"`
	LastName    string `json:"last_name"              yaml:"last_name"`
	City        string `json:"city,omitempty"         yaml:"city,omitempty"`
	StateProv   string `json:"stateprov,omitempty"    yaml:"stateprov,omitempty"`
	CountryName string `json:"country_name,omitempty" yaml:"country_name,omitempty"`
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
	WPPRRank    Int    `json:"wppr_rank,omitempty"    yaml:"wppr_rank,omitempty"`
}

// PlayerSearchResponse is the response of a player search.
type PlayerSearchResponse struct {
	Query  string               `json:"query,omitempty" yaml:"query,omitempty"`
	Search []PlayerSearchResult `json:"search"          yaml:"search"`
}

// TournamentResult is one result row, either of a player or of a tournament.
type TournamentResult struct {
	TournamentID   Int    `json:"tournament_id,omitempty"   yaml:"tournament_id,omitempty"`
	TournamentName string `json:"tournament_name,omitempty" yaml:"tournament_name,omitempty"`
	EventName      string `json:"event_name,omitempty"      yaml:"event_name,omitempty"`
	EventDate      string `json:"event_date,omitempty"      yaml:"event_date,omitempty"`
	PlayerID       Int    `json:"player_id,omitempty"       yaml:"player_id,omitempty"`
	FirstName      string `json:"first_name,omitempty"      yaml:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"       yaml:"last_name,omitempty"`
	Position       Int    `json:"position"                  yaml:"position"`
	CountryCode    string `json:"country_code,omitempty"    yaml:"country_code,omitempty"`
	WPPRPoints     Number `json:"points"                    yaml:"points"`
}

// PlayerResultsResponse lists a player's tournament results.
type PlayerResultsResponse struct {
	PlayerID     Int                `json:"player_id"     yaml:"player_id"`
	ResultsCount Int                `json:"results_count" yaml:"results_count"`
	Results      []TournamentResult `json:"results"       yaml:"results"`
}

// PvPRecord is one tournament two players both played.
type PvPRecord struct {
	TournamentID   Int    `json:"tournament_id"      yaml:"tournament_id"`
	TournamentName string `json:"tournament_name"    yaml:"tournament_name"`
	EventDate      string `json:"event_date"         yaml:"event_date"`
	Player1Finish  Int    `json:"p1_finish_position" yaml:"p1_finish_position"`
	Player2Finish  Int    `json:"p2_finish_position" yaml:"p2_finish_position"`
}

// PvPResponse compares two players head to head.
type PvPResponse struct {
	Player1ID Int         `json:"player1_id"             yaml:"player1_id"`
	Player2ID Int         `json:"player2_id"             yaml:"player2_id"`
	Player1   string      `json:"player1_name,omitempty" yaml:"player1_name,omitempty"`
	Player2   string      `json:"player2_name,omitempty" yaml:"player2_name,omitempty"`
	Wins      Int         `json:"player1_wins"           yaml:"player1_wins"`
	Losses    Int         `json:"player2_wins"           yaml:"player2_wins"`
	Ties      Int         `json:"ties"                   yaml:"ties"`
	Records   []PvPRecord `json:"pvp"                    yaml:"pvp"`
}

// Tournament is a tournament profile.
type Tournament struct {
	TournamentID   Int    `json:"tournament_id"              yaml:"tournament_id"`
	TournamentName string `json:"tournament_name"            yaml:"tournament_name"`
	EventName      string `json:"event_name,omitempty"       yaml:"event_name,omitempty"`
	EventStartDate string `json:"event_start_date,omitempty" yaml:"event_start_date,omitempty"`
	EventEndDate   string `json:"event_end_date,omitempty"   yaml:"event_end_date,omitempty"`
	City           string `json:"city,omitempty"             yaml:"city,omitempty"`
	StateProv      string `json:"stateprov,omitempty"        yaml:"stateprov,omitempty"`
	CountryName    string `json:"country_name,omitempty"     yaml:"country_name,omitempty"`
	CountryCode    string `json:"country_code,omitempty"     yaml:"country_code,omitempty"`
	DirectorName   string `json:"director_name,omitempty"    yaml:"director_name,omitempty"`
	PlayerCount    Int    `json:"player_count,omitempty"     yaml:"player_count,omitempty"`
	EventValue     Number `json:"event_value,omitempty"      yaml:"event_value,omitempty"`
	Website        string `json:"website,omitempty"          yaml:"website,omitempty"`
}

// TournamentSearchResponse is the response of a tournament search.
type TournamentSearchResponse struct {
	TotalResults Int          `json:"total_results" yaml:"total_results"`
	Tournaments  []Tournament `json:"tournaments"   yaml:"tournaments"`
}

// TournamentResultsResponse lists the standings of one tournament.
type TournamentResultsResponse struct {
	TournamentID Int                `json:"tournament_id" yaml:"tournament_id"`
	PlayerCount  Int                `json:"player_count"  yaml:"player_count"`
	Results      []TournamentResult `json:"results"       yaml:"results"`
}

// LeagueSession is one session of a league tournament.
type LeagueSession struct {
	SessionDate string `json:"session_date" yaml:"session_date"`
	PlayerCount Int    `json:"player_count" yaml:"player_count"`
}

// LeagueResponse describes a league tournament's sessions.
type LeagueResponse struct {
	TournamentID Int             `json:"tournament_id"  yaml:"tournament_id"`
	Sessions     []LeagueSession `json:"league_session" yaml:"league_session"`
}

// Ranking is one row of a ranking list.
type Ranking struct {
	PlayerID      Int    `json:"player_id"                 yaml:"player_id"`
	FirstName     string `json:"first_name"                yaml:"first_name"`
	LastName      string `json:"last_name"                 yaml:"last_name"`
	CountryName   string `json:"country_name,omitempty"    yaml:"country_name,omitempty"`
	CountryCode   string `json:"country_code,omitempty"    yaml:"country_code,omitempty"`
	CurrentRank   Int    `json:"current_rank"              yaml:"current_rank"`
	WPPRPoints    Number `json:"wppr_points"               yaml:"wppr_points"`
	EventCount    Int    `json:"event_count,omitempty"     yaml:"event_count,omitempty"`
	RatingsValue  Number `json:"rating_value,omitempty"    yaml:"rating_value,omitempty"`
	BestFinish    string `json:"best_finish,omitempty"     yaml:"best_finish,omitempty"`
	AgeInYears    Int    `json:"age,omitempty"             yaml:"age,omitempty"`
	ProfilePhoto  string `json:"profile_photo,omitempty"   yaml:"profile_photo,omitempty"`
	LastMonthRank Int    `json:"last_month_rank,omitempty" yaml:"last_month_rank,omitempty"`
}

// RankingsResponse is a page of a ranking list.
type RankingsResponse struct {
	RankingType string    `json:"ranking_type,omitempty" yaml:"ranking_type,omitempty"`
	StartPos    Int       `json:"start_position"         yaml:"start_position"`
	ReturnCount Int       `json:"return_count"           yaml:"return_count"`
	TotalCount  Int       `json:"total_count"            yaml:"total_count"`
	Rankings    []Ranking `json:"rankings"               yaml:"rankings"`
}

// Series is a championship series.
type Series struct {
	Code   string   `json:"code"            yaml:"code"`
	Title  string   `json:"title"           yaml:"title"`
	Active bool     `json:"active"          yaml:"active"`
	Years  []string `json:"years,omitempty" yaml:"years,omitempty"`
}

// SeriesListResponse lists every series.
type SeriesListResponse struct {
	Series []Series `json:"series" yaml:"series"`
}

// SeriesStanding is one region's leader in a series.
type SeriesStanding struct {
	RegionCode  string `json:"region_code"                        yaml:"region_code"`
	RegionName  string `json:"region_name"                        yaml:"region_name"`
	PlayerCount Int    `json:"player_count"                       yaml:"player_count"`
	LeaderID    Int    `json:"current_leader_player_id,omitempty" yaml:"current_leader_player_id,omitempty"`
	LeaderName  string `json:"current_leader_name,omitempty"      yaml:"current_leader_name,omitempty"`
	PrizeFund   Number `json:"prize_fund,omitempty"               yaml:"prize_fund,omitempty"`
}

// SeriesStandingsResponse lists region standings of a series.
type SeriesStandingsResponse struct {
	SeriesCode string           `json:"series_code"     yaml:"series_code"`
	Year       Int              `json:"year"            yaml:"year"`
	Standings  []SeriesStanding `json:"overall_results" yaml:"overall_results"`
}

// SeriesPlayerCard is a player's events within a series region.
type SeriesPlayerCard struct {
	SeriesCode  string             `json:"series_code"                yaml:"series_code"`
	RegionCode  string             `json:"region_code"                yaml:"region_code"`
	PlayerID    Int                `json:"player_id"                  yaml:"player_id"`
	PlayerName  string             `json:"player_name,omitempty"      yaml:"player_name,omitempty"`
	CurrentRank Int                `json:"current_position,omitempty" yaml:"current_position,omitempty"`
	TotalPoints Number             `json:"wppr_points,omitempty"      yaml:"wppr_points,omitempty"`
	Events      []TournamentResult `json:"player_card"                yaml:"player_card"`
}

// Director is a tournament director.
type Director struct {
	DirectorID      Int    `json:"director_id"                yaml:"director_id"`
	Name            string `json:"name"                       yaml:"name"`
	City            string `json:"city,omitempty"             yaml:"city,omitempty"`
	StateProv       string `json:"stateprov,omitempty"        yaml:"stateprov,omitempty"`
	CountryName     string `json:"country_name,omitempty"     yaml:"country_name,omitempty"`
	CountryCode     string `json:"country_code,omitempty"     yaml:"country_code,omitempty"`
	TournamentCount Int    `json:"tournament_count,omitempty" yaml:"tournament_count,omitempty"`
}

// DirectorSearchResponse is the response of a director search.
type DirectorSearchResponse struct {
	SearchTerm string     `json:"search_term,omitempty" yaml:"search_term,omitempty"`
	Count      Int        `json:"count"                 yaml:"count"`
	Directors  []Director `json:"directors"             yaml:"directors"`
}

// OverallStats is the aggregate player and event count summary.
type OverallStats struct {
	OverallPlayerCount    Int    `json:"overall_player_count"        yaml:"overall_player_count"`
	ActivePlayerCount     Int    `json:"active_player_count"         yaml:"active_player_count"`
	TournamentCount       Int    `json:"tournament_count"            yaml:"tournament_count"`
	TournamentsLastMonth  Int    `json:"tournament_count_last_month" yaml:"tournament_count_last_month"`
	TournamentsThisYear   Int    `json:"tournament_count_this_year"  yaml:"tournament_count_this_year"`
	TournamentPlayerCount Int    `json:"tournament_player_count"     yaml:"tournament_player_count"`
	AverageAge            Number `json:"age_average,omitempty"       yaml:"age_average,omitempty"`
}

// OverallStatsResponse wraps OverallStats.
type OverallStatsResponse struct {
	Type  string       `json:"type"  yaml:"type"`
	Stats OverallStats `json:"stats" yaml:"stats"`
}

// CountryPlayers is a player count for one country.
type CountryPlayers struct {
	CountryName string `json:"country_name" yaml:"country_name"`
	CountryCode string `json:"country_code" yaml:"country_code"`
	PlayerCount Int    `json:"player_count" yaml:"player_count"`
	StatsRank   Int    `json:"stats_rank"   yaml:"stats_rank"`
}

// CountryPlayersResponse lists player counts by country.
type CountryPlayersResponse struct {
	Type  string           `json:"type"  yaml:"type"`
	Stats []CountryPlayers `json:"stats" yaml:"stats"`
}
