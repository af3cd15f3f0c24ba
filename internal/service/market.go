package service

import (
	"context"
	"strings"

	"github.com/guttosm/stockpulse/internal/analytics"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/provider"
)

// History is the outcome of a historical-data request: the normalized
// symbol, the validated window, and the fetched series (possibly empty).
type History struct {
	Symbol string
	Window models.DateRange
	Series models.PriceSeries
}

// Insights is a History plus the statistics derived from its series.
type Insights struct {
	History
	Stats *models.Analytics
}

// MarketService defines the business logic behind the API endpoints.
// This decouples HTTP handlers from the upstream provider and the
// analytics engine, and lets tests substitute either.
type MarketService interface {
	GetHistory(ctx context.Context, symbol, start, end, interval string) (*History, error)
	GetInsights(ctx context.Context, symbol, start, end, interval string) (*Insights, error)
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
	GetProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error)
}

type marketService struct {
	provider provider.MarketProvider
}

func NewMarketService(p provider.MarketProvider) MarketService {
	return &marketService{provider: p}
}

// normalizeSymbol applies the canonical symbol form used everywhere:
// trimmed and upper-cased.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// GetHistory validates the requested window and fetches the bar series.
// Validation failures short-circuit before any upstream call.
func (s *marketService) GetHistory(ctx context.Context, symbol, start, end, interval string) (*History, error) {
	window, err := models.NewDateRange(start, end, interval)
	if err != nil {
		return nil, err
	}

	sym := normalizeSymbol(symbol)
	series, err := s.provider.FetchSeries(ctx, sym, window)
	if err != nil {
		return nil, err
	}

	return &History{Symbol: sym, Window: window, Series: series}, nil
}

// GetInsights fetches the series like GetHistory and derives statistics
// from it. A series with zero bars fails with analytics.ErrEmptySeries;
// "no data" is never silently reported as zero-valued metrics.
func (s *marketService) GetInsights(ctx context.Context, symbol, start, end, interval string) (*Insights, error) {
	hist, err := s.GetHistory(ctx, symbol, start, end, interval)
	if err != nil {
		return nil, err
	}

	stats, err := analytics.Compute(hist.Series)
	if err != nil {
		return nil, err
	}

	return &Insights{History: *hist, Stats: stats}, nil
}

func (s *marketService) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	return s.provider.FetchQuote(ctx, normalizeSymbol(symbol))
}

func (s *marketService) GetProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	return s.provider.FetchProfile(ctx, normalizeSymbol(symbol))
}
