package pricing

import (
	"math"

	"OptionPulse/internal/domain/models"
)

const sqrt2Pi = 2.5066282746310002

// DefaultRiskFreeRate is the annual rate assumed when none is configured.
const DefaultRiskFreeRate = 0.05

const (
	ivInitialGuess = 0.5
	ivMinSigma     = 0.01
	ivMaxSigma     = 5.0
	ivVegaFloor    = 1e-10
)

// Kernel prices European options with the standard lognormal-diffusion
// closed form. All methods are pure functions of their arguments; the
// kernel only carries the risk-free rate used for ITM probabilities.
type Kernel struct {
	riskFreeRate float64
}

// NewKernel builds a kernel. A non-positive rate falls back to the default.
func NewKernel(riskFreeRate float64) *Kernel {
	if riskFreeRate <= 0 {
		riskFreeRate = DefaultRiskFreeRate
	}
	return &Kernel{riskFreeRate: riskFreeRate}
}

// RiskFreeRate returns the configured annual rate.
func (k *Kernel) RiskFreeRate() float64 { return k.riskFreeRate }

// Price returns the closed-form European option value.
// At or past expiry it returns exact intrinsic value.
func (k *Kernel) Price(s, strike, t, r, sigma float64, side models.OptionSide) float64 {
	if t <= 0 {
		if side == models.Call {
			return math.Max(s-strike, 0)
		}
		return math.Max(strike-s, 0)
	}

	d1, d2 := dValues(s, strike, t, r, sigma)
	if side == models.Call {
		return s*normCDF(d1) - strike*math.Exp(-r*t)*normCDF(d2)
	}
	return strike*math.Exp(-r*t)*normCDF(-d2) - s*normCDF(-d1)
}

// Greeks returns delta, gamma, daily theta, vega per 1% vol move and
// rho per 1% rate move. All are exactly zero at expiry.
func (k *Kernel) Greeks(s, strike, t, r, sigma float64, side models.OptionSide) models.Greeks {
	if t <= 0 {
		return models.Greeks{}
	}

	d1, d2 := dValues(s, strike, t, r, sigma)
	sqrtT := math.Sqrt(t)
	discount := math.Exp(-r * t)

	g := models.Greeks{
		Gamma: normPDF(d1) / (s * sigma * sqrtT),
		Vega:  s * normPDF(d1) * sqrtT / 100,
	}

	decay := -(s * normPDF(d1) * sigma) / (2 * sqrtT)
	if side == models.Call {
		g.Delta = normCDF(d1)
		g.Theta = (decay - r*strike*discount*normCDF(d2)) / 365
		g.Rho = strike * t * discount * normCDF(d2) / 100
	} else {
		g.Delta = -normCDF(-d1)
		g.Theta = (decay + r*strike*discount*normCDF(-d2)) / 365
		g.Rho = -strike * t * discount * normCDF(-d2) / 100
	}
	return g
}

// ImpliedVolatility inverts the pricing formula with Newton-Raphson.
// It starts at sigma=0.5 and clamps every iterate to [0.01, 5.0].
// Non-convergence is a soft condition: the last iterate is returned,
// never an error, so callers degrade instead of failing.
func (k *Kernel) ImpliedVolatility(s, strike, t, r, marketPrice float64, side models.OptionSide) float64 {
	const (
		maxIter = 100
		tol     = 1e-5
	)

	sigma := ivInitialGuess
	for i := 0; i < maxIter; i++ {
		diff := marketPrice - k.Price(s, strike, t, r, sigma, side)
		if math.Abs(diff) < tol {
			return sigma
		}

		// Raw Black-Scholes vega, not the per-1% scaled Greek.
		d1, _ := dValues(s, strike, t, r, sigma)
		vega := s * normPDF(d1) * math.Sqrt(t)
		if vega < ivVegaFloor {
			break
		}

		sigma += diff / vega
		sigma = math.Max(ivMinSigma, math.Min(sigma, ivMaxSigma))
	}
	return sigma
}

// ProbabilityITM is the risk-neutral probability of finishing in the
// money, using the kernel's own risk-free rate. At expiry it resolves
// deterministically from current moneyness.
func (k *Kernel) ProbabilityITM(s, strike, t, sigma float64, side models.OptionSide) float64 {
	if t <= 0 {
		if side == models.Call {
			if s > strike {
				return 1.0
			}
			return 0.0
		}
		if s < strike {
			return 1.0
		}
		return 0.0
	}

	d2 := (math.Log(s/strike) + (k.riskFreeRate-0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	if side == models.Call {
		return normCDF(d2)
	}
	return normCDF(-d2)
}

// BreakEven returns the expiry spot at which the position breaks even.
func (k *Kernel) BreakEven(strike, premium float64, side models.OptionSide) float64 {
	if side == models.Call {
		return strike + premium
	}
	return strike - premium
}

// Quote bundles price, Greeks, ITM probability and break-even in one pass.
func (k *Kernel) Quote(s, strike, t, r, sigma float64, side models.OptionSide) models.OptionQuote {
	price := k.Price(s, strike, t, r, sigma, side)
	return models.OptionQuote{
		Price:          price,
		Greeks:         k.Greeks(s, strike, t, r, sigma, side),
		ProbabilityITM: k.ProbabilityITM(s, strike, t, sigma, side),
		BreakEven:      k.BreakEven(strike, price, side),
	}
}

func dValues(s, strike, t, r, sigma float64) (d1, d2 float64) {
	sqrtT := math.Sqrt(t)
	d1 = (math.Log(s/strike) + (r+0.5*sigma*sigma)*t) / (sigma * sqrtT)
	d2 = d1 - sigma*sqrtT
	return d1, d2
}

func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}
