package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// seriesOf builds a daily series from closing prices only; open/high/low
// are derived so bar invariants hold but do not affect close statistics.
func seriesOf(closes ...float64) models.PriceSeries {
	base := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	series := make(models.PriceSeries, 0, len(closes))
	for i, c := range closes {
		series = append(series, models.Bar{
			Date:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		})
	}
	return series
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute_EmptySeries(t *testing.T) {
	out, err := Compute(models.PriceSeries{})
	if !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("want ErrEmptySeries, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil analytics, got %+v", out)
	}
}

func TestCompute_SingleBar(t *testing.T) {
	out, err := Compute(seriesOf(42.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AverageClose != 42.5 || out.MaxClose != 42.5 || out.MinClose != 42.5 {
		t.Fatalf("single bar stats must equal its close: %+v", out)
	}
	if out.Volatility != 0 {
		t.Fatalf("single bar volatility must be 0, got %v", out.Volatility)
	}
	if out.TotalReturn != 0 {
		t.Fatalf("single bar total return must be 0, got %v", out.TotalReturn)
	}
}

// TestCompute_IdenticalBars pins exact zeros for constant series. Sizes
// like 100 are included because sum/n does not round-trip to the common
// close for every n, which would leave residue in a naive variance pass.
func TestCompute_IdenticalBars(t *testing.T) {
	for _, n := range []int{1, 2, 5, 100, 1000} {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = 17.3
		}
		out, err := Compute(seriesOf(closes...))
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if out.Volatility != 0 || out.TotalReturn != 0 {
			t.Fatalf("n=%d: want vol=0 return=0, got vol=%v return=%v", n, out.Volatility, out.TotalReturn)
		}
		if !almostEqual(out.AverageClose, 17.3) {
			t.Fatalf("n=%d: avg %v, want 17.3", n, out.AverageClose)
		}
	}
}

// TestCompute_PopulationStdDev pins the divide-by-N convention: the sample
// standard deviation of [10,12,9,15] is ~2.6458, the population one ~2.2913.
func TestCompute_PopulationStdDev(t *testing.T) {
	out, err := Compute(seriesOf(10, 12, 9, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(out.AverageClose, 11.5) {
		t.Fatalf("avg %v, want 11.5", out.AverageClose)
	}
	if out.MaxClose != 15 || out.MinClose != 9 {
		t.Fatalf("extremes %v/%v, want 15/9", out.MaxClose, out.MinClose)
	}
	if !almostEqual(out.TotalReturn, 0.5) {
		t.Fatalf("total return %v, want 0.5", out.TotalReturn)
	}
	want := math.Sqrt((1.5*1.5 + 0.5*0.5 + 2.5*2.5 + 3.5*3.5) / 4)
	if !almostEqual(out.Volatility, want) {
		t.Fatalf("volatility %v, want population std dev %v", out.Volatility, want)
	}
}

func TestCompute_TotalReturnSign(t *testing.T) {
	cases := []struct {
		name   string
		closes []float64
		sign   int
	}{
		{name: "positive", closes: []float64{10, 8, 12}, sign: 1},
		{name: "negative", closes: []float64{12, 14, 10}, sign: -1},
		{name: "flat", closes: []float64{10, 14, 10}, sign: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Compute(seriesOf(tc.closes...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := 0
			if out.TotalReturn > 0 {
				got = 1
			} else if out.TotalReturn < 0 {
				got = -1
			}
			if got != tc.sign {
				t.Fatalf("total return %v, want sign %d", out.TotalReturn, tc.sign)
			}
		})
	}
}

func TestCompute_ZeroFirstClose(t *testing.T) {
	out, err := Compute(seriesOf(0, 5, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalReturn != 0 {
		t.Fatalf("zero first close must yield return 0, got %v", out.TotalReturn)
	}
}

func TestCompute_TiesKeepFirstOccurrence(t *testing.T) {
	series := seriesOf(15, 9, 15, 9)
	out, err := Compute(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.MaxCloseDate.Equal(series[0].Date) {
		t.Fatalf("max date %v, want first occurrence %v", out.MaxCloseDate, series[0].Date)
	}
	if !out.MinCloseDate.Equal(series[1].Date) {
		t.Fatalf("min date %v, want first occurrence %v", out.MinCloseDate, series[1].Date)
	}
}
