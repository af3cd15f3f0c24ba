// Package analytics derives aggregate statistics from an ordered OHLCV
// price series. It is pure computation: no I/O, no shared state.
package analytics

import (
	"errors"
	"math"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// ErrEmptySeries is returned when statistics are requested for a series
// with zero bars. Callers must not confuse "no data" with "metric is zero".
var ErrEmptySeries = errors.New("cannot compute analytics on an empty price series")

// Compute derives Analytics from a price series ordered ascending by date.
//
// Numeric semantics:
//   - Volatility is the population standard deviation of closing prices
//     (sum of squared deviations divided by N, not N-1), computed in two
//     passes (mean, then variance) for stability on typical series sizes.
//     A series whose closes are all equal reports exactly 0.
//   - Max/min close ties keep the first occurrence; its date is reported.
//   - TotalReturn is (last close - first close) / first close. A single-bar
//     series has a total return of 0 (no change), and a zero first close
//     also yields 0 rather than dividing by zero.
//
// Returns ErrEmptySeries if the series has no bars.
func Compute(series models.PriceSeries) (*models.Analytics, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	n := float64(len(series))

	var sum float64
	maxIdx, minIdx := 0, 0
	for i, bar := range series {
		sum += bar.Close
		if bar.Close > series[maxIdx].Close {
			maxIdx = i
		}
		if bar.Close < series[minIdx].Close {
			minIdx = i
		}
	}
	mean := sum / n

	// All closes equal: volatility is exactly 0. Computing it through the
	// two-pass formula would leave float rounding residue (sum/n does not
	// divide back to the common close for every n), so skip the second pass.
	var volatility float64
	if series[maxIdx].Close != series[minIdx].Close {
		var sqDiff float64
		for _, bar := range series {
			d := bar.Close - mean
			sqDiff += d * d
		}
		volatility = math.Sqrt(sqDiff / n)
	}

	first := series[0].Close
	last := series[len(series)-1].Close
	var totalReturn float64
	if first != 0 {
		totalReturn = (last - first) / first
	}

	return &models.Analytics{
		AverageClose: mean,
		MaxClose:     series[maxIdx].Close,
		MaxCloseDate: series[maxIdx].Date,
		MinClose:     series[minIdx].Close,
		MinCloseDate: series[minIdx].Date,
		Volatility:   volatility,
		TotalReturn:  totalReturn,
	}, nil
}
