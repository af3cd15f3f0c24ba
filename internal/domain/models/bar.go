package models

import "time"

// Bar represents a single OHLCV record for one sampling bucket.
//
// Invariants (guaranteed by the provider layer):
//   - Low <= Open, Close <= High
//   - Volume >= 0
//   - within a series, Date is strictly increasing
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries is an ordered sequence of bars for one symbol and one
// date range, ascending by date. It may be empty (no trading activity).
type PriceSeries []Bar
