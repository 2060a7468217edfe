package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'ifpa login' or set IFPA_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
	ErrInvalidOutput      = errors.New("output must be one of table, json or yaml")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrConfigKeyUnknown   = errors.New("unknown configuration key")
)

// Argument errors.
var (
	ErrInvalidPlayerID     = errors.New("player ID must be a positive integer")
	ErrInvalidTournamentID = errors.New("tournament ID must be a positive integer")
	ErrInvalidDirectorID   = errors.New("director ID must be a positive integer")
	ErrInvalidDate         = errors.New("date must use YYYY-MM-DD")
	ErrUnknownRankingType  = errors.New("unknown ranking type")
)

// Filter errors.
var (
	ErrWhereNotBoolean = errors.New("--where expression must evaluate to a boolean")
)
