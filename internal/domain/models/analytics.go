package models

import "time"

// Analytics holds the aggregate statistics derived from one price series.
//
// Fields:
//   - AverageClose: arithmetic mean of all closing prices.
//   - MaxClose / MinClose: extreme closing prices; on ties the first
//     occurrence wins, and its date is reported alongside.
//   - Volatility: population standard deviation of closing prices.
//   - TotalReturn: (last close - first close) / first close, as a ratio.
//
// Analytics is derived, stateless and recomputed per request; it is never
// produced for an empty series.
type Analytics struct {
	AverageClose float64
	MaxClose     float64
	MaxCloseDate time.Time
	MinClose     float64
	MinCloseDate time.Time
	Volatility   float64
	TotalReturn  float64
}
