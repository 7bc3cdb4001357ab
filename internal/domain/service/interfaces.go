package service

import (
	"context"
	"time"

	"OptionPulse/internal/domain/models"
)

// RegimeClassifier derives a market regime reading from a price series.
type RegimeClassifier interface {
	Classify(series models.PriceSeries) models.RegimeReading
}

// StrategySelector scores the catalog against a regime/volatility context
// and emits concrete trade parameters.
type StrategySelector interface {
	Recommend(regime models.Regime, volatility, currentPrice, capital float64) models.StrategyRecommendation
}

// Simulator values an option by stochastic path simulation.
type Simulator interface {
	Simulate(ctx context.Context, s, k, t, r, sigma float64, side models.OptionSide, numPaths int, seed int64) (models.SimulationResult, error)
}

// Analyzer is the single entry point for a full analysis pass.
// The caller supplies the wall clock so timing advice stays testable.
type Analyzer interface {
	Analyze(ctx context.Context, series models.PriceSeries, volatility, capital float64, now time.Time) (*models.AnalysisResult, error)
}
