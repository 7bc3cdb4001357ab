package regime

import (
	"math"

	"OptionPulse/internal/domain/models"
	"OptionPulse/internal/services/features"
)

const (
	smaShortWindow = 20
	smaLongWindow  = 50
	atrWindow      = 14
	returnsWindow  = 20

	// Classification thresholds. The ladder below is order-sensitive:
	// high volatility wins over trend, trend wins over ranging.
	highVolATRPct    = 5.0
	mediumVolATRPct  = 3.0
	trendBreakout    = 1.02
	trendBreakdown   = 0.98
	trendMinStrength = 0.5

	epsilon = 1e-10
)

// Classifier labels the current price-action character from a bar series.
// Stateless; every call is a pure function of its input.
type Classifier struct{}

func NewClassifier() *Classifier { return &Classifier{} }

// Classify derives a regime reading. Series shorter than
// models.MinBarsForAnalysis yield the insufficient_data reading with
// zero confidence instead of undefined behavior.
func (c *Classifier) Classify(series models.PriceSeries) models.RegimeReading {
	if len(series) < models.MinBarsForAnalysis {
		return models.RegimeReading{Regime: models.RegimeInsufficientData}
	}

	closes := series.Closes()
	current := closes[len(closes)-1]

	sma20 := features.SMA(closes, smaShortWindow)
	sma50 := features.SMA(closes, smaLongWindow)

	atr := features.Mean(features.Tail(features.TrueRanges(series), atrWindow))
	atrPct := atr / current * 100

	recentReturns := features.Tail(features.Returns(closes), returnsWindow)
	trendStrength := math.Abs(features.Mean(recentReturns)) / (features.SampleStdDev(recentReturns) + epsilon)

	reading := models.RegimeReading{
		CurrentPrice:    current,
		SMA20:           sma20,
		SMA50:           sma50,
		ATR:             atr,
		ATRPct:          atrPct,
		TrendStrength:   trendStrength,
		VolatilityLevel: volatilityLevel(atrPct),
	}

	switch {
	case atrPct > highVolATRPct:
		reading.Regime = models.RegimeHighVolatility
		reading.Confidence = math.Min(atrPct/10, 0.95)

	case current > sma20*trendBreakout && sma20 > sma50 && trendStrength > trendMinStrength:
		reading.Regime = models.RegimeBullishTrend
		reading.Confidence = math.Min(trendStrength, 0.9)

	case current < sma20*trendBreakdown && sma20 < sma50 && trendStrength > trendMinStrength:
		reading.Regime = models.RegimeBearishTrend
		reading.Confidence = math.Min(trendStrength, 0.9)

	default:
		reading.Regime = models.RegimeRanging
		reading.Confidence = rangingConfidence(closes)
	}

	return reading
}

// rangingConfidence measures how well price is contained: the tighter
// the closes sit inside their recent range, the higher the confidence.
func rangingConfidence(closes []float64) float64 {
	recent := features.Tail(closes, returnsWindow)
	lo, hi := recent[0], recent[0]
	for _, c := range recent {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	contained := 1 - features.SampleStdDev(recent)/((hi-lo)+epsilon)
	return math.Max(0.5, math.Min(contained, 0.85))
}

func volatilityLevel(atrPct float64) models.VolatilityLevel {
	switch {
	case atrPct > highVolATRPct:
		return models.VolatilityHigh
	case atrPct > mediumVolATRPct:
		return models.VolatilityMedium
	default:
		return models.VolatilityLow
	}
}
