package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// parseID parses a positive integer identifier, wrapping invalid with the
// argument value.
func parseID(arg string, invalid error) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", invalid, arg)
	}

	return id, nil
}

// parseDate parses a YYYY-MM-DD flag value. Empty yields the zero time.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(ifpa.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidDate, value)
	}

	return parsed, nil
}

// locationFlags are the location filters shared by search commands.
type locationFlags struct {
	country   string
	stateProv string
	city      string
}

func applyLocation[B ifpa.Builder[B]](query B, flags locationFlags) B {
	if flags.country != "" {
		query = ifpa.WithCountry(query, flags.country)
	}

	if flags.stateProv != "" {
		query = ifpa.WithStateProv(query, flags.stateProv)
	}

	if flags.city != "" {
		query = ifpa.WithCity(query, flags.city)
	}

	return query
}
