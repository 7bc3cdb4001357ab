package models

import (
	"encoding/json"
	"math"
)

// OptionSide distinguishes calls from puts.
type OptionSide string

const (
	Call OptionSide = "call"
	Put  OptionSide = "put"
)

// Valid reports whether the side is one of the two known values.
func (s OptionSide) Valid() bool { return s == Call || s == Put }

// Greeks holds the standard option sensitivities. Theta is per day,
// vega is per 1% volatility move, rho is per 1% rate move.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// OptionQuote bundles a theoretical price with its Greeks and
// the risk-neutral probability of expiring in the money.
type OptionQuote struct {
	Price          float64 `json:"price"`
	Greeks         Greeks  `json:"greeks"`
	ProbabilityITM float64 `json:"probability_itm"`
	BreakEven      float64 `json:"break_even"`
}

// SimulationResult is the output of a Monte Carlo valuation run.
type SimulationResult struct {
	Price               float64 `json:"price"`
	ConfidenceLower     float64 `json:"confidence_interval_lower"`
	ConfidenceUpper     float64 `json:"confidence_interval_upper"`
	ProbabilityOfProfit float64 `json:"probability_of_profit"`
	ExpectedPayoff      float64 `json:"expected_payoff"`
	MinPayoff           float64 `json:"min_payoff"`
	MaxPayoff           float64 `json:"max_payoff"`
	NumPaths            int     `json:"num_paths"`
}

// Ratio is a float that serializes +/-Inf and NaN as null, so sentinel
// risk/reward values survive JSON encoding.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	v := float64(r)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// IronCondorMetrics aggregates the four-leg condor economics.
// RiskReward is +Inf when max profit is not positive.
type IronCondorMetrics struct {
	NetCredit           float64 `json:"net_credit"`
	MaxProfit           float64 `json:"max_profit"`
	MaxLoss             float64 `json:"max_loss"`
	MaxProfitPct        float64 `json:"max_profit_pct"`
	UpperBreakEven      float64 `json:"upper_breakeven"`
	LowerBreakEven      float64 `json:"lower_breakeven"`
	ProbabilityOfProfit float64 `json:"probability_of_profit"`
	RiskReward          Ratio   `json:"risk_reward_ratio"`
}

// ButterflyMetrics aggregates the three-strike butterfly economics.
// ProbabilityOfProfit is a fixed 0.5 placeholder, kept deliberately.
type ButterflyMetrics struct {
	NetDebit            float64 `json:"net_debit"`
	MaxProfit           float64 `json:"max_profit"`
	MaxLoss             float64 `json:"max_loss"`
	MaxProfitPct        float64 `json:"max_profit_pct"`
	LowerBreakEven      float64 `json:"lower_breakeven"`
	UpperBreakEven      float64 `json:"upper_breakeven"`
	ProbabilityOfProfit float64 `json:"probability_of_profit"`
	RiskReward          Ratio   `json:"risk_reward_ratio"`
}
