package ifpa

import (
	"time"
)

// Query parameter names shared across IFPA endpoints.
const (
	ParamName       = "name"
	ParamCountry    = "country"
	ParamStateProv  = "stateprov"
	ParamCity       = "city"
	ParamRegionCode = "region_code"
	ParamStartDate  = "start_date"
	ParamEndDate    = "end_date"
	ParamCount      = "count"
	ParamStartPos   = "start_pos"

	ParamTournament = "tournament"
	ParamTourPos    = "tourpos"
	ParamYear       = "year"
)

// DateLayout is the date format IFPA accepts in query parameters.
const DateLayout = "2006-01-02"

// Set returns a copy of b with key set to value. b is unchanged.
func Set[B Builder[B], V Scalar](b B, key string, value V) B {
	return b.withParams(b.currentParams().with(key, normalizeScalar(value)))
}

// Unset returns a copy of b without key. b is unchanged.
func Unset[B Builder[B]](b B, key string) B {
	return b.withParams(b.currentParams().without(key))
}

// WithName filters by name.
func WithName[B Builder[B]](b B, name string) B {
	return Set(b, ParamName, name)
}

// WithCountry filters by country name or code.
func WithCountry[B Builder[B]](b B, country string) B {
	return Set(b, ParamCountry, country)
}

// WithStateProv filters by state or province.
func WithStateProv[B Builder[B]](b B, stateProv string) B {
	return Set(b, ParamStateProv, stateProv)
}

// WithCity filters by city.
func WithCity[B Builder[B]](b B, city string) B {
	return Set(b, ParamCity, city)
}

// WithRegionCode filters by series region.
func WithRegionCode[B Builder[B]](b B, regionCode string) B {
	return Set(b, ParamRegionCode, regionCode)
}

// WithTournament filters players by a tournament they played.
func WithTournament[B Builder[B]](b B, tournament string) B {
	return Set(b, ParamTournament, tournament)
}

// WithTournamentPosition narrows WithTournament to a finishing position.
func WithTournamentPosition[B Builder[B]](b B, position int) B {
	return Set(b, ParamTourPos, position)
}

// WithYear selects a series or ranking year.
func WithYear[B Builder[B]](b B, year int) B {
	return Set(b, ParamYear, year)
}

// WithDateRange limits results to [start, end]. A zero time leaves that bound
// unset.
func WithDateRange[B Builder[B]](b B, start, end time.Time) B {
	if !start.IsZero() {
		b = Set(b, ParamStartDate, start.Format(DateLayout))
	}

	if !end.IsZero() {
		b = Set(b, ParamEndDate, end.Format(DateLayout))
	}

	return b
}

// WithPage selects the 1-based page of the given size.
func WithPage[B Paginable[B]](b B, page, size int) B {
	if page < 1 {
		page = 1
	}

	return b.WithPageSize(size).WithOffset((page - 1) * size)
}
