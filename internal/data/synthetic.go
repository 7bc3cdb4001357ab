package data

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"OptionPulse/internal/domain/models"
	"OptionPulse/internal/domain/repository"
)

// SyntheticProvider generates random-walk OHLCV series. It stands in for
// the real exchange collaborator during local runs and tests; connectivity
// to an actual venue is out of scope for this engine.
type SyntheticProvider struct {
	mu        sync.Mutex
	rng       *rand.Rand
	basePrice float64
	dailyVol  float64
}

// NewSyntheticProvider seeds a provider around the given base price.
// The same seed reproduces the same series.
func NewSyntheticProvider(basePrice float64, seed int64) *SyntheticProvider {
	if basePrice <= 0 {
		basePrice = 50000
	}
	return &SyntheticProvider{
		rng:       rand.New(rand.NewSource(seed)),
		basePrice: basePrice,
		dailyVol:  0.02,
	}
}

// Spot returns a price near the configured base.
func (p *SyntheticProvider) Spot(ctx context.Context, symbol string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.basePrice * (1 + p.rng.NormFloat64()*p.dailyVol), nil
}

// Bars generates n chronological daily bars ending now.
func (p *SyntheticProvider) Bars(ctx context.Context, symbol string, n int) (models.PriceSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("synthetic bars: non-positive count %d", n)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -n)
	price := p.basePrice
	out := make(models.PriceSeries, 0, n)
	for i := 0; i < n; i++ {
		delta := p.rng.NormFloat64() * p.dailyVol * price
		open := price
		close := price + delta
		high := math.Max(open, close) + math.Abs(p.rng.NormFloat64()*p.dailyVol*price*0.3)
		low := math.Min(open, close) - math.Abs(p.rng.NormFloat64()*p.dailyVol*price*0.3)
		out = append(out, models.PriceBar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    float64(1000 + p.rng.Intn(5000)),
		})
		price = close
	}
	return out, nil
}

var _ repository.MarketData = (*SyntheticProvider)(nil)
