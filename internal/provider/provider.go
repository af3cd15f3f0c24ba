// Package provider defines the upstream market-data contract and its
// Yahoo Finance implementation. The rest of the application depends on
// the interfaces only, so providers and test doubles are interchangeable.
package provider

import (
	"context"
	"errors"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// Upstream failure kinds. Wrapped with detail by implementations;
// callers discriminate with errors.Is.
var (
	// ErrUpstreamUnavailable means the provider could not be reached,
	// timed out, or answered with a server-side failure. The core never
	// retries; retry policy, if any, belongs to the provider layer.
	ErrUpstreamUnavailable = errors.New("upstream market data provider unavailable")

	// ErrSymbolNotFound means the provider explicitly reported the symbol
	// as unknown, as opposed to a legitimately empty trading period.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// SeriesProvider returns the ordered bar series for one symbol over a
// validated date range. An empty series is a valid result ("no trading
// activity"), distinct from ErrSymbolNotFound.
type SeriesProvider interface {
	FetchSeries(ctx context.Context, symbol string, window models.DateRange) (models.PriceSeries, error)
}

// MarketProvider is the full upstream surface: historical bars plus the
// snapshot quote and company profile lookups.
type MarketProvider interface {
	SeriesProvider
	FetchQuote(ctx context.Context, symbol string) (*models.Quote, error)
	FetchProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error)
}
