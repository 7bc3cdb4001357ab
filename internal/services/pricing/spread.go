package pricing

import (
	"math"

	"OptionPulse/internal/domain/models"
)

// SpreadPricer composes kernel prices into multi-leg strategy metrics.
// Pure aggregation, no new numerics.
type SpreadPricer struct {
	kernel *Kernel
}

func NewSpreadPricer(kernel *Kernel) *SpreadPricer {
	return &SpreadPricer{kernel: kernel}
}

// IronCondor prices a short call spread above and a short put spread below.
// Probability of profit is the chance spot stays between the short strikes.
func (p *SpreadPricer) IronCondor(s, callShort, callLong, putShort, putLong, t, r, sigma float64) models.IronCondorMetrics {
	shortCall := p.kernel.Price(s, callShort, t, r, sigma, models.Call)
	longCall := p.kernel.Price(s, callLong, t, r, sigma, models.Call)
	shortPut := p.kernel.Price(s, putShort, t, r, sigma, models.Put)
	longPut := p.kernel.Price(s, putLong, t, r, sigma, models.Put)

	netCredit := (shortCall + shortPut) - (longCall + longPut)
	maxProfit := netCredit

	callWidth := callLong - callShort
	putWidth := putShort - putLong
	maxLoss := math.Max(callWidth, putWidth) - netCredit

	probBelowCall := p.kernel.ProbabilityITM(s, callShort, t, sigma, models.Put)
	probAbovePut := p.kernel.ProbabilityITM(s, putShort, t, sigma, models.Call)

	return models.IronCondorMetrics{
		NetCredit:           netCredit,
		MaxProfit:           maxProfit,
		MaxLoss:             maxLoss,
		MaxProfitPct:        profitPct(maxProfit, maxLoss),
		UpperBreakEven:      callShort + netCredit,
		LowerBreakEven:      putShort - netCredit,
		ProbabilityOfProfit: probBelowCall - (1 - probAbovePut),
		RiskReward:          riskReward(maxLoss, maxProfit),
	}
}

// Butterfly prices a long wing / short body / long wing position.
// The 0.5 probability of profit is a deliberate placeholder carried
// over from the original policy, not an analytic result.
func (p *SpreadPricer) Butterfly(s, lower, middle, upper, t, r, sigma float64, side models.OptionSide) models.ButterflyMetrics {
	lowerLeg := p.kernel.Price(s, lower, t, r, sigma, side)
	middleLeg := p.kernel.Price(s, middle, t, r, sigma, side)
	upperLeg := p.kernel.Price(s, upper, t, r, sigma, side)

	netDebit := lowerLeg + upperLeg - 2*middleLeg
	maxProfit := (middle - lower) - netDebit
	maxLoss := netDebit

	return models.ButterflyMetrics{
		NetDebit:            netDebit,
		MaxProfit:           maxProfit,
		MaxLoss:             maxLoss,
		MaxProfitPct:        profitPct(maxProfit, maxLoss),
		LowerBreakEven:      lower + netDebit,
		UpperBreakEven:      upper - netDebit,
		ProbabilityOfProfit: 0.5,
		RiskReward:          riskReward(maxLoss, maxProfit),
	}
}

func profitPct(maxProfit, maxLoss float64) float64 {
	if maxLoss <= 0 {
		return 0
	}
	return (maxProfit / maxLoss) * 100
}

// riskReward reports +Inf when the position cannot profit.
func riskReward(maxLoss, maxProfit float64) models.Ratio {
	if maxProfit <= 0 {
		return models.Ratio(math.Inf(1))
	}
	return models.Ratio(maxLoss / maxProfit)
}
