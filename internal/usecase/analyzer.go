package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"OptionPulse/internal/domain/models"
	domsvc "OptionPulse/internal/domain/service"
	"OptionPulse/internal/services/strategy"
)

// Probability-of-profit adjustment policy.
const (
	popFloor = 0.30
	popCeil  = 0.95

	regimeMatchBoost    = 0.05
	highConfidenceBoost = 0.03
	premiumSellingBoost = 0.05

	highConfidenceBar = 0.8
	highIVBar         = 0.6
)

// Risk assessment policy. MaxLossPct is reported against a fixed
// reference capital rather than the caller's; kept as-is deliberately.
const (
	riskHighThreshold   = 1000.0
	riskMediumThreshold = 500.0
	referenceCapital    = 5000.0
)

// Liquidity windows in UTC hours. Order matters for the next-window scan.
var (
	liquidHours = []int{8, 9, 10, 14, 15, 16}
	goodHours   = []int{7, 11, 13, 17}
)

// Analyzer sequences regime classification, strategy selection,
// probability-of-profit estimation, timing and risk assessment into a
// single recommendation record. It is the one entry point a surrounding
// surface consumes.
type Analyzer struct {
	classifier domsvc.RegimeClassifier
	selector   domsvc.StrategySelector
}

func NewAnalyzer(classifier domsvc.RegimeClassifier, selector domsvc.StrategySelector) *Analyzer {
	return &Analyzer{classifier: classifier, selector: selector}
}

// Analyze produces a fresh AnalysisResult. A series shorter than the
// classifier minimum degrades to a well-formed insufficient_data variant
// carrying only the market reading; it is a result, not an error.
func (a *Analyzer) Analyze(ctx context.Context, series models.PriceSeries, volatility, capital float64, now time.Time) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if volatility <= 0 {
		return nil, fmt.Errorf("analyze: volatility must be positive, got %v", volatility)
	}
	if capital <= 0 {
		return nil, fmt.Errorf("analyze: capital must be positive, got %v", capital)
	}

	reading := a.classifier.Classify(series)
	if reading.Regime == models.RegimeInsufficientData {
		return &models.AnalysisResult{
			Timestamp:      now,
			MarketAnalysis: reading,
			Summary: fmt.Sprintf("Insufficient price history: %d bars supplied, %d required for regime analysis.",
				len(series), models.MinBarsForAnalysis),
		}, nil
	}

	rec := a.selector.Recommend(reading.Regime, volatility, reading.CurrentPrice, capital)
	pop := estimateProbabilityOfProfit(rec, reading, volatility)
	timing := recommendTiming(now)
	risk := assessRisk(rec, reading)

	return &models.AnalysisResult{
		Timestamp:           now,
		MarketAnalysis:      reading,
		Recommendation:      &rec,
		ProbabilityOfProfit: pop,
		Timing:              &timing,
		Risk:                &risk,
		Summary:             buildSummary(reading, rec, pop),
	}, nil
}

// estimateProbabilityOfProfit starts from the strategy's baseline win
// rate and applies additive context boosts, clamped to [0.30, 0.95].
func estimateProbabilityOfProfit(rec models.StrategyRecommendation, reading models.RegimeReading, volatility float64) float64 {
	pop := rec.ExpectedWinRate

	def, ok := strategy.Lookup(rec.RecommendedStrategy)
	if ok && def.BestRegime == reading.Regime {
		pop += regimeMatchBoost
	}
	if reading.Confidence > highConfidenceBar {
		pop += highConfidenceBoost
	}
	if strategy.IsPremiumSelling(rec.RecommendedStrategy) && volatility > highIVBar {
		pop += premiumSellingBoost
	}

	return math.Min(popCeil, math.Max(popFloor, pop))
}

// recommendTiming scores the supplied clock against the liquidity
// windows and names the next upcoming liquid hour, wrapping to tomorrow.
func recommendTiming(now time.Time) models.TimingAdvice {
	hour := now.UTC().Hour()

	score := "acceptable"
	switch {
	case containsHour(liquidHours, hour):
		score = "optimal"
	case containsHour(goodHours, hour):
		score = "good"
	}

	return models.TimingAdvice{
		CurrentTimeUTC:   now.UTC().Format("2006-01-02 15:04:05 UTC"),
		TimingScore:      score,
		RecommendedHours: liquidHours,
		NextWindow:       nextLiquidWindow(hour),
		Reason:           "High liquidity periods provide better fills and tighter spreads",
	}
}

func nextLiquidWindow(hour int) string {
	sorted := append([]int(nil), liquidHours...)
	sort.Ints(sorted)
	for _, h := range sorted {
		if h > hour {
			return fmt.Sprintf("Today at %02d:00 UTC", h)
		}
	}
	return fmt.Sprintf("Tomorrow at %02d:00 UTC", sorted[0])
}

func containsHour(hours []int, h int) bool {
	for _, v := range hours {
		if v == h {
			return true
		}
	}
	return false
}

func assessRisk(rec models.StrategyRecommendation, reading models.RegimeReading) models.RiskAssessment {
	maxRisk := rec.TradeParameters.MaxRisk

	level := "low"
	switch {
	case maxRisk > riskHighThreshold:
		level = "high"
	case maxRisk > riskMediumThreshold:
		level = "medium"
	}

	size := "Moderate"
	if maxRisk < riskMediumThreshold {
		size = "Conservative"
	}

	return models.RiskAssessment{
		RiskLevel:         level,
		MaxLoss:           maxRisk,
		MaxLossPct:        maxRisk / referenceCapital * 100,
		RegimeUncertainty: 1 - reading.Confidence,
		PositionSize:      size,
		StopLoss:          "Exit if loss reaches 50% of max risk",
		Diversification:   "Consider spreading across 2-3 different expirations",
	}
}

func buildSummary(reading models.RegimeReading, rec models.StrategyRecommendation, pop float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MARKET ANALYSIS SUMMARY\n")
	fmt.Fprintf(&b, "======================\n")
	fmt.Fprintf(&b, "Current Market Regime: %s (Confidence: %.1f%%)\n", titleCase(string(reading.Regime)), reading.Confidence*100)
	fmt.Fprintf(&b, "Current Price: $%.2f\n", reading.CurrentPrice)
	fmt.Fprintf(&b, "Volatility Level: %s\n\n", strings.ToUpper(string(reading.VolatilityLevel)))
	fmt.Fprintf(&b, "RECOMMENDED STRATEGY: %s\n", titleCase(string(rec.RecommendedStrategy)))
	fmt.Fprintf(&b, "%s\n\n", rec.Description)
	fmt.Fprintf(&b, "Expected Win Rate: %.1f%%\n", rec.ExpectedWinRate*100)
	fmt.Fprintf(&b, "Probability of Profit: %.1f%%\n", pop*100)
	fmt.Fprintf(&b, "Position Size: %d contract(s)\n", rec.TradeParameters.Contracts)
	fmt.Fprintf(&b, "Suggested Duration: %d days\n\n", rec.TradeParameters.ExpirationDays)
	fmt.Fprintf(&b, "This strategy is optimal for current market conditions with a %.0f%% confidence level.",
		reading.Confidence*100)
	return b.String()
}

func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
