package dto

import "github.com/guttosm/stockpulse/internal/domain/models"

// BarResponse is one OHLCV record as returned on the wire.
type BarResponse struct {
	Date   string  `json:"date" example:"2023-01-03"`
	Open   float64 `json:"open" example:"130.28"`
	High   float64 `json:"high" example:"130.90"`
	Low    float64 `json:"low" example:"124.17"`
	Close  float64 `json:"close" example:"125.07"`
	Volume int64   `json:"volume" example:"112117500"`
}

// HistoricalResponse is the JSON structure returned by the
// POST /api/v1/historical-data endpoint. Bars are ordered ascending by
// date and may be empty when the range had no trading activity.
//
// swagger:model HistoricalResponse
type HistoricalResponse struct {
	Symbol   string        `json:"symbol" example:"AAPL"`
	Interval string        `json:"interval" example:"1d"`
	Bars     []BarResponse `json:"bars"`
}

// NewHistoricalResponse maps a domain price series onto the wire shape.
func NewHistoricalResponse(symbol, interval string, series models.PriceSeries) HistoricalResponse {
	bars := make([]BarResponse, 0, len(series))
	for _, b := range series {
		bars = append(bars, BarResponse{
			Date:   b.Date.Format(models.DateLayout),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return HistoricalResponse{Symbol: symbol, Interval: interval, Bars: bars}
}
