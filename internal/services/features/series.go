package features

import (
	"math"

	"OptionPulse/internal/domain/models"
)

// Returns computes simple returns r_t = C_t/C_{t-1} - 1.
// It returns a slice of length len(closes)-1, or nil if insufficient data.
func Returns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, closes[i]/prev-1)
	}
	return out
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// SampleStdDev returns the n-1 standard deviation, or 0 below two samples.
func SampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	sum2 := 0.0
	for _, x := range xs {
		d := x - mean
		sum2 += d * d
	}
	return math.Sqrt(sum2 / float64(len(xs)-1))
}

// SMA is the simple moving average over the last window values.
// When fewer values exist the mean of the whole slice is returned.
func SMA(closes []float64, window int) float64 {
	if len(closes) < window {
		return Mean(closes)
	}
	return Mean(closes[len(closes)-window:])
}

// TrueRanges computes per-bar true range
// max(high-low, |high-prevClose|, |low-prevClose|).
// The first bar has no previous close and uses high-low alone.
func TrueRanges(series models.PriceSeries) []float64 {
	out := make([]float64, 0, len(series))
	for i, b := range series {
		tr := b.High - b.Low
		if i > 0 {
			prev := series[i-1].Close
			tr = math.Max(tr, math.Max(math.Abs(b.High-prev), math.Abs(b.Low-prev)))
		}
		out = append(out, tr)
	}
	return out
}

// HistoricalVolatility annualizes the standard deviation of simple
// returns by the given number of bars per year (365 for daily bars).
func HistoricalVolatility(closes []float64, barsPerYear float64) float64 {
	rets := Returns(closes)
	if len(rets) < 2 {
		return 0
	}
	return SampleStdDev(rets) * math.Sqrt(barsPerYear)
}

// Tail returns the last n values, or the whole slice when shorter.
func Tail(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}
