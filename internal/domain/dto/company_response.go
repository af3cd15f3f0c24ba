package dto

import "github.com/guttosm/stockpulse/internal/domain/models"

// OfficerResponse is one leadership entry in a company profile.
type OfficerResponse struct {
	Name     string `json:"name" example:"Tim Cook"`
	Title    string `json:"title" example:"Chief Executive Officer"`
	Age      int    `json:"age,omitempty" example:"63"`
	YearBorn int    `json:"year_born,omitempty" example:"1960"`
}

// CompanyInfoResponse is the JSON structure returned by the
// GET /api/v1/company-info/{symbol} endpoint.
//
// swagger:model CompanyInfoResponse
type CompanyInfoResponse struct {
	Symbol   string            `json:"symbol" example:"AAPL"`
	Name     string            `json:"name" example:"Apple Inc."`
	Summary  string            `json:"summary,omitempty"`
	Industry string            `json:"industry,omitempty" example:"Consumer Electronics"`
	Sector   string            `json:"sector,omitempty" example:"Technology"`
	Website  string            `json:"website,omitempty" example:"https://www.apple.com"`
	Officers []OfficerResponse `json:"officers"`
}

// NewCompanyInfoResponse maps a domain profile onto the wire shape.
func NewCompanyInfoResponse(p *models.CompanyProfile) CompanyInfoResponse {
	officers := make([]OfficerResponse, 0, len(p.Officers))
	for _, o := range p.Officers {
		officers = append(officers, OfficerResponse{
			Name:     o.Name,
			Title:    o.Title,
			Age:      o.Age,
			YearBorn: o.YearBorn,
		})
	}
	return CompanyInfoResponse{
		Symbol:   p.Symbol,
		Name:     p.Name,
		Summary:  p.Summary,
		Industry: p.Industry,
		Sector:   p.Sector,
		Website:  p.Website,
		Officers: officers,
	}
}

// StockDataResponse is the JSON structure returned by the
// GET /api/v1/stock-data/{symbol} endpoint.
//
// swagger:model StockDataResponse
type StockDataResponse struct {
	Symbol           string  `json:"symbol" example:"AAPL"`
	Currency         string  `json:"currency" example:"USD"`
	LastPrice        float64 `json:"last_price" example:"189.95"`
	PreviousClose    float64 `json:"previous_close" example:"188.10"`
	Open             float64 `json:"open" example:"188.50"`
	DayHigh          float64 `json:"day_high" example:"190.20"`
	DayLow           float64 `json:"day_low" example:"187.90"`
	Volume           int64   `json:"volume" example:"51234567"`
	MarketCap        int64   `json:"market_cap" example:"2950000000000"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high" example:"199.62"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low" example:"124.17"`
}

// NewStockDataResponse maps a domain quote onto the wire shape.
func NewStockDataResponse(q *models.Quote) StockDataResponse {
	return StockDataResponse{
		Symbol:           q.Symbol,
		Currency:         q.Currency,
		LastPrice:        q.LastPrice,
		PreviousClose:    q.PreviousClose,
		Open:             q.Open,
		DayHigh:          q.DayHigh,
		DayLow:           q.DayLow,
		Volume:           q.Volume,
		MarketCap:        q.MarketCap,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
	}
}
