package models

// Quote is a snapshot of current market data for one symbol, as reported
// by the upstream provider. Pointer-free zero values mean "not reported".
type Quote struct {
	Symbol           string
	Currency         string
	LastPrice        float64
	PreviousClose    float64
	Open             float64
	DayHigh          float64
	DayLow           float64
	Volume           int64
	MarketCap        int64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
}
