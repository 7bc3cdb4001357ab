package repository

import (
	"context"

	"OptionPulse/internal/domain/models"
)

// MarketData supplies spot price and historical bars. Real exchange
// connectivity lives outside this engine; implementations here are
// synthetic or test doubles.
type MarketData interface {
	Spot(ctx context.Context, symbol string) (float64, error)
	Bars(ctx context.Context, symbol string, n int) (models.PriceSeries, error)
}

// Metrics records operational counters for the analysis service.
type Metrics interface {
	RecordAnalysis(regime, strategy string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
