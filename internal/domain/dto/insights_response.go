package dto

import "github.com/guttosm/stockpulse/internal/domain/models"

// InsightsResponse is the JSON structure returned by the
// POST /api/v1/analytical-insights endpoint: the historical bars plus the
// statistics derived from them. TotalReturn is a ratio, not a percentage.
//
// swagger:model InsightsResponse
type InsightsResponse struct {
	Symbol       string        `json:"symbol" example:"AAPL"`
	Interval     string        `json:"interval" example:"1d"`
	StartDate    string        `json:"start_date" example:"2023-01-01"`
	EndDate      string        `json:"end_date" example:"2023-06-30"`
	Bars         []BarResponse `json:"bars"`
	AverageClose float64       `json:"average_close" example:"11.5"`
	MaxClose     float64       `json:"max_close" example:"15"`
	MaxCloseDate string        `json:"max_close_date" example:"2023-01-06"`
	MinClose     float64       `json:"min_close" example:"9"`
	MinCloseDate string        `json:"min_close_date" example:"2023-01-05"`
	Volatility   float64       `json:"volatility" example:"2.2913"`
	TotalReturn  float64       `json:"total_return" example:"0.5"`
}

// NewInsightsResponse combines the series and its analytics into the wire
// shape. Pure formatting; callers guarantee analytics matches the series.
func NewInsightsResponse(symbol string, window models.DateRange, series models.PriceSeries, a *models.Analytics) InsightsResponse {
	hist := NewHistoricalResponse(symbol, window.Interval, series)
	return InsightsResponse{
		Symbol:       hist.Symbol,
		Interval:     hist.Interval,
		StartDate:    window.Start.Format(models.DateLayout),
		EndDate:      window.End.Format(models.DateLayout),
		Bars:         hist.Bars,
		AverageClose: a.AverageClose,
		MaxClose:     a.MaxClose,
		MaxCloseDate: a.MaxCloseDate.Format(models.DateLayout),
		MinClose:     a.MinClose,
		MinCloseDate: a.MinCloseDate.Format(models.DateLayout),
		Volatility:   a.Volatility,
		TotalReturn:  a.TotalReturn,
	}
}
