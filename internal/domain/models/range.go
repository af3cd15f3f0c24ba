package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for all request dates.
const DateLayout = "2006-01-02"

// DefaultInterval is used when the caller omits the interval field.
const DefaultInterval = "1d"

// Validation errors returned by NewDateRange. Handlers map these to
// client-error responses; they are always raised before any upstream call.
var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("start_date must not be after end_date")
	ErrInvalidInterval   = errors.New("invalid interval")
)

// validIntervals is the set of sampling granularities accepted by the
// upstream chart API.
var validIntervals = map[string]bool{
	"1d":  true,
	"5d":  true,
	"1wk": true,
	"1mo": true,
	"3mo": true,
}

// DateRange is a validated request window: calendar start/end dates
// (inclusive, start <= end) plus a sampling interval.
type DateRange struct {
	Start    time.Time
	End      time.Time
	Interval string
}

// NewDateRange parses and validates raw start/end date strings and an
// optional interval. An empty interval defaults to DefaultInterval.
//
// Returns ErrInvalidDateFormat, ErrInvalidDateRange or ErrInvalidInterval
// (wrapped with the offending value) on bad input. No side effects.
func NewDateRange(start, end, interval string) (DateRange, error) {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start_date %q", ErrInvalidDateFormat, start)
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end_date %q", ErrInvalidDateFormat, end)
	}
	if startDate.After(endDate) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}

	if interval == "" {
		interval = DefaultInterval
	}
	if !validIntervals[interval] {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidInterval, interval)
	}

	return DateRange{Start: startDate, End: endDate, Interval: interval}, nil
}
