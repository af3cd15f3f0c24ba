package dto

import (
	"testing"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

func TestNewHistoricalResponse(t *testing.T) {
	series := models.PriceSeries{
		{Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 100},
		{Date: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), Open: 10.5, High: 12, Low: 10, Close: 11.5, Volume: 200},
	}

	out := NewHistoricalResponse("AAPL", "1d", series)
	if out.Symbol != "AAPL" || out.Interval != "1d" {
		t.Fatalf("unexpected header fields: %+v", out)
	}
	if len(out.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(out.Bars))
	}
	if out.Bars[0].Date != "2023-01-03" || out.Bars[1].Close != 11.5 {
		t.Fatalf("unexpected bars: %+v", out.Bars)
	}
}

func TestNewHistoricalResponse_EmptySeriesMarshalsToArray(t *testing.T) {
	out := NewHistoricalResponse("AAPL", "1d", nil)
	// Bars must be an empty slice, not nil, so JSON renders [] instead of null.
	if out.Bars == nil || len(out.Bars) != 0 {
		t.Fatalf("expected empty non-nil bars, got %#v", out.Bars)
	}
}

func TestNewInsightsResponse(t *testing.T) {
	window, err := models.NewDateRange("2023-01-01", "2023-01-31", "1d")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	series := models.PriceSeries{
		{Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), Close: 10},
		{Date: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), Close: 15},
	}
	a := &models.Analytics{
		AverageClose: 12.5,
		MaxClose:     15, MaxCloseDate: series[1].Date,
		MinClose: 10, MinCloseDate: series[0].Date,
		Volatility: 2.5, TotalReturn: 0.5,
	}

	out := NewInsightsResponse("AAPL", window, series, a)
	if out.StartDate != "2023-01-01" || out.EndDate != "2023-01-31" {
		t.Fatalf("unexpected window: %+v", out)
	}
	if out.MaxCloseDate != "2023-01-04" || out.MinCloseDate != "2023-01-03" {
		t.Fatalf("unexpected extreme dates: %+v", out)
	}
	if out.TotalReturn != 0.5 || len(out.Bars) != 2 {
		t.Fatalf("unexpected payload: %+v", out)
	}
}
