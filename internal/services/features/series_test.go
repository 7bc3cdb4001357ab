package features

import (
	"math"
	"testing"
	"time"

	"OptionPulse/internal/domain/models"
)

func TestReturns(t *testing.T) {
	got := Returns([]float64{100, 110, 99})
	want := []float64{0.1, -0.1}

	if len(got) != len(want) {
		t.Fatalf("returns length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("returns[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if Returns([]float64{100}) != nil {
		t.Fatal("single close should yield nil returns")
	}
	if got := Returns([]float64{0, 100}); got[0] != 0 {
		t.Fatalf("zero previous close should yield 0 return, got %v", got[0])
	}
}

func TestSMAFallback(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6}

	if got := SMA(closes, 3); got != 5 {
		t.Fatalf("SMA(3) = %v, want mean of last three", got)
	}
	// Window longer than the slice averages everything available.
	if got := SMA(closes, 50); got != 3.5 {
		t.Fatalf("SMA(50) = %v, want whole-slice mean 3.5", got)
	}
}

func TestSampleStdDev(t *testing.T) {
	if got := SampleStdDev([]float64{42}); got != 0 {
		t.Fatalf("stddev of one sample = %v, want 0", got)
	}
	if got := SampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-math.Sqrt(32.0/7)) > 1e-12 {
		t.Fatalf("sample stddev = %v", got)
	}
}

func TestTrueRanges(t *testing.T) {
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	series := models.PriceSeries{
		{Timestamp: ts, High: 105, Low: 95, Close: 100},
		// Gap up: distance from the previous close dominates high-low.
		{Timestamp: ts.AddDate(0, 0, 1), High: 120, Low: 115, Close: 118},
		// Gap down.
		{Timestamp: ts.AddDate(0, 0, 2), High: 100, Low: 96, Close: 98},
	}

	got := TrueRanges(series)
	want := []float64{10, 20, 22}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("true range[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHistoricalVolatility(t *testing.T) {
	// Constant closes carry zero volatility.
	if got := HistoricalVolatility([]float64{100, 100, 100, 100}, 365); got != 0 {
		t.Fatalf("flat series volatility = %v, want 0", got)
	}
	if got := HistoricalVolatility([]float64{100, 101}, 365); got != 0 {
		t.Fatalf("two closes should yield 0, got %v", got)
	}

	closes := []float64{100, 102, 99, 103, 101, 104}
	rets := Returns(closes)
	want := SampleStdDev(rets) * math.Sqrt(365)
	if got := HistoricalVolatility(closes, 365); got != want {
		t.Fatalf("volatility = %v, want %v", got, want)
	}
}

func TestTail(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	got := Tail(xs, 2)
	if len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Fatalf("tail(2) = %v", got)
	}
	if got := Tail(xs, 10); len(got) != 5 {
		t.Fatalf("tail(10) should return everything, got %v", got)
	}
}
