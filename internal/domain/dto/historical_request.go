package dto

// HistoricalRequest is the JSON body accepted by the historical-data and
// analytical-insights endpoints. Dates are YYYY-MM-DD strings; interval is
// optional and defaults to daily. Binding tags handle presence checks;
// date and interval semantics are validated by models.NewDateRange.
type HistoricalRequest struct {
	Symbol    string `json:"symbol" binding:"required" example:"AAPL"`
	StartDate string `json:"start_date" binding:"required" example:"2023-01-01"`
	EndDate   string `json:"end_date" binding:"required" example:"2023-06-30"`
	Interval  string `json:"interval" example:"1d"`
}
