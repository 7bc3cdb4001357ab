package regime

import (
	"math"
	"testing"
	"time"

	"OptionPulse/internal/domain/models"
)

func barSeries(n int, closeAt func(i int) float64, rangePct float64) models.PriceSeries {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	series := make(models.PriceSeries, n)
	for i := range series {
		c := closeAt(i)
		series[i] = models.PriceBar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      c,
			High:      c * (1 + rangePct),
			Low:       c * (1 - rangePct),
			Close:     c,
			Volume:    1000,
		}
	}
	return series
}

func TestClassifyInsufficientData(t *testing.T) {
	c := NewClassifier()

	r := c.Classify(barSeries(models.MinBarsForAnalysis-1, func(int) float64 { return 50000 }, 0.001))
	if r.Regime != models.RegimeInsufficientData {
		t.Fatalf("regime = %s, want %s", r.Regime, models.RegimeInsufficientData)
	}
	if r.Confidence != 0 {
		t.Fatalf("confidence = %v, want 0", r.Confidence)
	}
}

func TestClassifyBullishTrend(t *testing.T) {
	c := NewClassifier()

	// Steady 2% daily climb with tight intraday ranges: strong trend,
	// low ATR, price well above the short average.
	series := barSeries(30, func(i int) float64 { return 1000 * math.Pow(1.02, float64(i)) }, 0.001)
	r := c.Classify(series)

	if r.Regime != models.RegimeBullishTrend {
		t.Fatalf("regime = %s, want %s (reading %+v)", r.Regime, models.RegimeBullishTrend, r)
	}
	if r.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want capped 0.9", r.Confidence)
	}
	if r.SMA20 <= r.SMA50 {
		t.Fatalf("expected rising averages, sma20=%v sma50=%v", r.SMA20, r.SMA50)
	}
}

func TestClassifyBearishTrend(t *testing.T) {
	c := NewClassifier()

	series := barSeries(30, func(i int) float64 { return 1000 * math.Pow(0.98, float64(i)) }, 0.001)
	r := c.Classify(series)

	if r.Regime != models.RegimeBearishTrend {
		t.Fatalf("regime = %s, want %s (reading %+v)", r.Regime, models.RegimeBearishTrend, r)
	}
	if r.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want capped 0.9", r.Confidence)
	}
}

func TestClassifyHighVolatilityBeatsTrend(t *testing.T) {
	c := NewClassifier()

	// Same strong climb as the bullish case, but with 10% intraday
	// swings: the volatility rung outranks the trend rung.
	series := barSeries(30, func(i int) float64 { return 1000 * math.Pow(1.02, float64(i)) }, 0.10)
	r := c.Classify(series)

	if r.Regime != models.RegimeHighVolatility {
		t.Fatalf("regime = %s, want %s", r.Regime, models.RegimeHighVolatility)
	}
	if r.Confidence != 0.95 {
		t.Fatalf("confidence = %v, want capped 0.95", r.Confidence)
	}
	if r.VolatilityLevel != models.VolatilityHigh {
		t.Fatalf("volatility level = %s, want %s", r.VolatilityLevel, models.VolatilityHigh)
	}
}

func TestClassifyRanging(t *testing.T) {
	c := NewClassifier()

	series := barSeries(30, func(i int) float64 {
		if i%2 == 0 {
			return 49900
		}
		return 50100
	}, 0.003)
	r := c.Classify(series)

	if r.Regime != models.RegimeRanging {
		t.Fatalf("regime = %s, want %s (reading %+v)", r.Regime, models.RegimeRanging, r)
	}
	if r.Confidence < 0.5 || r.Confidence > 0.85 {
		t.Fatalf("ranging confidence %v outside [0.5, 0.85]", r.Confidence)
	}
	if r.VolatilityLevel != models.VolatilityLow {
		t.Fatalf("volatility level = %s, want %s", r.VolatilityLevel, models.VolatilityLow)
	}
}

func TestClassifyFlatSeriesIsRanging(t *testing.T) {
	c := NewClassifier()

	r := c.Classify(barSeries(25, func(int) float64 { return 50000 }, 0.001))
	if r.Regime != models.RegimeRanging {
		t.Fatalf("flat series regime = %s, want %s", r.Regime, models.RegimeRanging)
	}
}
