package ifpa

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is implemented by every error type this package defines. Use it with
// errors.As to tell SDK failures apart from context cancellation or caller bugs.
type Error interface {
	error
	ifpaError()
}

// Static errors for err113 compliance.
var (
	ErrMissingAPIKey       = errors.New("API key is required")
	ErrInvalidBaseURL      = errors.New("invalid base URL")
	ErrInvalidTimeout      = errors.New("timeout must not be negative")
	ErrMaxResultsExceeded  = errors.New("result count exceeds max_results")
	ErrNullResponse        = errors.New("resource not found (null response)")
	ErrUnexpectedResponse  = errors.New("unexpected response shape")
	ErrEmptyIdentifier     = errors.New("identifier must not be empty")
	ErrCacheKeyNotFound    = errors.New("key not found")
	ErrUnsupportedCache    = errors.New("unsupported cache type")
	ErrNATSConfigRequired  = errors.New("NATS configuration required for NATS cache")
	ErrKeyNotFoundAnyCache = errors.New("key not found in any cache")
)

// ConfigurationError is returned while building a client, before any request
// is sent.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "ifpa: invalid configuration: " + e.Err.Error()
	}

	return fmt.Sprintf("ifpa: invalid configuration: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) ifpaError() {}

// APIError reports any failure of an HTTP exchange with the IFPA API: non-2xx
// statuses, error payloads embedded in 2xx bodies, network failures and
// timeouts.
//
// StatusCode is zero when no response was received. RequestURL is always set.
type APIError struct {
	Message       string
	StatusCode    int
	Body          any
	RequestURL    string
	RequestParams Params
	Err           error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var sb strings.Builder

	sb.WriteString("ifpa: ")

	if e.StatusCode != 0 {
		_, _ = fmt.Fprintf(&sb, "HTTP %d: ", e.StatusCode)
	}

	sb.WriteString(e.Message)

	if e.RequestURL != "" {
		_, _ = fmt.Fprintf(&sb, " (url: %s)", e.RequestURL)
	}

	return sb.String()
}

// Unwrap returns the underlying network error, if any.
func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) ifpaError() {}

// HasStatus reports whether a response status was received.
func (e *APIError) HasStatus() bool { return e.StatusCode != 0 }

// FieldError is one failed parameter check.
type FieldError struct {
	Field   string `json:"field"   yaml:"field"`
	Kind    string `json:"kind"    yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// ValidationError is returned before any request is sent when local parameter
// validation is enabled and the parameters fail the resource's schema.
type ValidationError struct {
	Resource string
	Fields   []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return fmt.Sprintf("ifpa: invalid %s parameters: %s", e.Resource, strings.Join(parts, "; "))
}

func (e *ValidationError) ifpaError() {}

// NotFoundError is returned by single-entity lookups that came back 404.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ifpa: %s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) ifpaError() {}

// SeriesPlayerNotFoundError means the player has no card in the series region.
type SeriesPlayerNotFoundError struct {
	SeriesCode string
	PlayerID   int
	RegionCode string
	Err        error
}

func (e *SeriesPlayerNotFoundError) Error() string {
	return fmt.Sprintf("ifpa: player %d not found in series %s region %s", e.PlayerID, e.SeriesCode, e.RegionCode)
}

func (e *SeriesPlayerNotFoundError) Unwrap() error { return e.Err }

func (e *SeriesPlayerNotFoundError) ifpaError() {}

// PlayersNeverMetError means a head-to-head lookup found no shared tournaments.
type PlayersNeverMetError struct {
	PlayerID   int
	OpponentID int
	Err        error
}

func (e *PlayersNeverMetError) Error() string {
	return fmt.Sprintf("ifpa: players %d and %d have never met in competition", e.PlayerID, e.OpponentID)
}

func (e *PlayersNeverMetError) Unwrap() error { return e.Err }

func (e *PlayersNeverMetError) ifpaError() {}

// TournamentNotLeagueError is returned when league results are requested for a
// tournament that is not a league.
type TournamentNotLeagueError struct {
	TournamentID int
	Err          error
}

func (e *TournamentNotLeagueError) Error() string {
	return fmt.Sprintf("ifpa: tournament %d is not a league", e.TournamentID)
}

func (e *TournamentNotLeagueError) Unwrap() error { return e.Err }

func (e *TournamentNotLeagueError) ifpaError() {}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	nfErr := &NotFoundError{}
	if errors.As(err, &nfErr) {
		return true
	}

	return StatusCode(err) == http.StatusNotFound
}

// IsAPIError checks if the error came from an HTTP exchange.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}
