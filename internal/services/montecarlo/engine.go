package montecarlo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"OptionPulse/internal/domain/models"
)

const (
	// DefaultNumPaths balances estimate noise against runtime.
	DefaultNumPaths = 10000

	daysPerYear = 365
)

// Engine values European options by simulating geometric Brownian motion
// price paths with daily steps. Path batches are embarrassingly parallel:
// shards run on a small worker pool and merge by summation, so shard
// completion order never changes the result beyond float rounding.
type Engine struct {
	workers int
}

// NewEngine builds an engine with the given worker count (min 1).
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{workers: workers}
}

type shardResult struct {
	sumPayoff  float64
	sumPayoff2 float64
	profitable int
	minPayoff  float64
	maxPayoff  float64
}

// Simulate runs numPaths GBM paths and reports the discounted mean payoff
// with a 95% confidence interval and the fraction of profitable paths.
// The seed makes runs reproducible for a fixed engine worker count; each
// shard derives its own source so shards stay independent.
func (e *Engine) Simulate(ctx context.Context, s, k, t, r, sigma float64, side models.OptionSide, numPaths int, seed int64) (models.SimulationResult, error) {
	if numPaths <= 0 {
		numPaths = DefaultNumPaths
	}
	if t <= 0 {
		return models.SimulationResult{}, fmt.Errorf("simulate: non-positive expiry %v", t)
	}
	if !side.Valid() {
		return models.SimulationResult{}, fmt.Errorf("simulate: unknown side %q", side)
	}

	dt := t / daysPerYear
	steps := int(math.Round(t * daysPerYear))
	if steps < 1 {
		steps = 1
	}
	drift := (r - 0.5*sigma*sigma) * dt
	diffusion := sigma * math.Sqrt(dt)

	shards := e.workers
	if shards > numPaths {
		shards = numPaths
	}

	results := make([]shardResult, shards)
	var wg sync.WaitGroup
	for w := 0; w < shards; w++ {
		paths := numPaths / shards
		if w < numPaths%shards {
			paths++
		}

		wg.Add(1)
		go func(idx, paths int) {
			defer wg.Done()
			results[idx] = runShard(s, k, drift, diffusion, steps, paths, side, shardSeed(seed, idx))
		}(w, paths)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return models.SimulationResult{}, err
	}

	merged := shardResult{minPayoff: math.Inf(1), maxPayoff: math.Inf(-1)}
	for _, sr := range results {
		merged.sumPayoff += sr.sumPayoff
		merged.sumPayoff2 += sr.sumPayoff2
		merged.profitable += sr.profitable
		merged.minPayoff = math.Min(merged.minPayoff, sr.minPayoff)
		merged.maxPayoff = math.Max(merged.maxPayoff, sr.maxPayoff)
	}

	n := float64(numPaths)
	mean := merged.sumPayoff / n
	variance := merged.sumPayoff2/n - mean*mean
	if variance < 0 {
		variance = 0
	}

	discount := math.Exp(-r * t)
	price := discount * mean
	halfWidth := 1.96 * math.Sqrt(variance/n) * discount

	return models.SimulationResult{
		Price:               price,
		ConfidenceLower:     price - halfWidth,
		ConfidenceUpper:     price + halfWidth,
		ProbabilityOfProfit: float64(merged.profitable) / n,
		ExpectedPayoff:      mean,
		MinPayoff:           merged.minPayoff,
		MaxPayoff:           merged.maxPayoff,
		NumPaths:            numPaths,
	}, nil
}

func runShard(s, k, drift, diffusion float64, steps, paths int, side models.OptionSide, seed int64) shardResult {
	rng := rand.New(rand.NewSource(seed))
	res := shardResult{minPayoff: math.Inf(1), maxPayoff: math.Inf(-1)}

	for p := 0; p < paths; p++ {
		price := s
		for step := 0; step < steps; step++ {
			price *= math.Exp(drift + diffusion*rng.NormFloat64())
		}

		var payoff float64
		if side == models.Call {
			payoff = math.Max(price-k, 0)
		} else {
			payoff = math.Max(k-price, 0)
		}

		res.sumPayoff += payoff
		res.sumPayoff2 += payoff * payoff
		if payoff > 0 {
			res.profitable++
		}
		res.minPayoff = math.Min(res.minPayoff, payoff)
		res.maxPayoff = math.Max(res.maxPayoff, payoff)
	}
	return res
}

// shardSeed spreads the base seed so neighboring shards do not reuse
// overlapping generator states.
func shardSeed(seed int64, shard int) int64 {
	const stride = 0x9E3779B9 // golden-ratio increment
	return seed + int64(shard+1)*stride
}
