package models

import "time"

// Regime labels the current character of price action.
type Regime string

const (
	RegimeRanging          Regime = "ranging"
	RegimeBullishTrend     Regime = "bullish_trend"
	RegimeBearishTrend     Regime = "bearish_trend"
	RegimeHighVolatility   Regime = "high_volatility"
	RegimeInsufficientData Regime = "insufficient_data"
)

// VolatilityLevel is a coarse bucket derived from ATR as a percent of price.
type VolatilityLevel string

const (
	VolatilityLow    VolatilityLevel = "low"
	VolatilityMedium VolatilityLevel = "medium"
	VolatilityHigh   VolatilityLevel = "high"
)

// RegimeReading is the full output of one classification pass.
type RegimeReading struct {
	Regime          Regime          `json:"regime"`
	Confidence      float64         `json:"confidence"`
	CurrentPrice    float64         `json:"current_price"`
	SMA20           float64         `json:"sma_20"`
	SMA50           float64         `json:"sma_50"`
	ATR             float64         `json:"atr"`
	ATRPct          float64         `json:"atr_pct"`
	TrendStrength   float64         `json:"trend_strength"`
	VolatilityLevel VolatilityLevel `json:"volatility_level"`
}

// Strategy names one of the six catalog entries.
type Strategy string

const (
	IronCondor      Strategy = "iron_condor"
	ButterflySpread Strategy = "butterfly_spread"
	BullCallSpread  Strategy = "bull_call_spread"
	BearPutSpread   Strategy = "bear_put_spread"
	LongStraddle    Strategy = "long_straddle"
	CreditSpread    Strategy = "credit_spread"
)

// TradeParameters carries the concrete strike and sizing layout for a
// recommended strategy. Only the fields relevant to the strategy are set;
// Contracts is never below 1 and MaxRisk is bounded by the capital policy.
type TradeParameters struct {
	CallShortStrike float64 `json:"call_short_strike,omitempty"`
	CallLongStrike  float64 `json:"call_long_strike,omitempty"`
	PutShortStrike  float64 `json:"put_short_strike,omitempty"`
	PutLongStrike   float64 `json:"put_long_strike,omitempty"`
	LowerStrike     float64 `json:"lower_strike,omitempty"`
	MiddleStrike    float64 `json:"middle_strike,omitempty"`
	UpperStrike     float64 `json:"upper_strike,omitempty"`
	LongStrike      float64 `json:"long_strike,omitempty"`
	ShortStrike     float64 `json:"short_strike,omitempty"`
	Strike          float64 `json:"strike,omitempty"`
	Contracts       int     `json:"contracts"`
	ExpirationDays  int     `json:"expiration_days"`
	MaxRisk         float64 `json:"max_risk"`
}

// RankedStrategy is an alternative candidate with its score.
type RankedStrategy struct {
	Strategy Strategy `json:"strategy"`
	Score    float64  `json:"score"`
}

// StrategyRecommendation is the selector's full answer.
type StrategyRecommendation struct {
	RecommendedStrategy Strategy         `json:"recommended_strategy"`
	ConfidenceScore     float64          `json:"confidence_score"`
	Description         string           `json:"description"`
	ExpectedWinRate     float64          `json:"expected_win_rate"`
	TradeParameters     TradeParameters  `json:"trade_parameters"`
	Alternatives        []RankedStrategy `json:"alternative_strategies"`
}

// TimingAdvice scores the current UTC hour against liquidity windows.
type TimingAdvice struct {
	CurrentTimeUTC   string `json:"current_time_utc"`
	TimingScore      string `json:"timing_score"`
	RecommendedHours []int  `json:"recommended_hours_utc"`
	NextWindow       string `json:"next_optimal_window"`
	Reason           string `json:"reason"`
}

// RiskAssessment summarizes the downside of the recommended position.
type RiskAssessment struct {
	RiskLevel         string  `json:"risk_level"`
	MaxLoss           float64 `json:"max_loss"`
	MaxLossPct        float64 `json:"max_loss_pct"`
	RegimeUncertainty float64 `json:"regime_uncertainty"`
	PositionSize      string  `json:"recommended_position_size"`
	StopLoss          string  `json:"stop_loss_recommendation"`
	Diversification   string  `json:"diversification"`
}

// AnalysisResult is the single artifact handed to consumers, produced
// fresh on every call. When the input series is too short only
// MarketAnalysis and Summary are populated and Recommendation is nil.
type AnalysisResult struct {
	Timestamp           time.Time               `json:"timestamp"`
	MarketAnalysis      RegimeReading           `json:"market_analysis"`
	Recommendation      *StrategyRecommendation `json:"strategy_recommendation,omitempty"`
	ProbabilityOfProfit float64                 `json:"probability_of_profit"`
	Timing              *TimingAdvice           `json:"timing_recommendation,omitempty"`
	Risk                *RiskAssessment         `json:"risk_assessment,omitempty"`
	Summary             string                  `json:"summary"`
}

// Insufficient reports whether the result is the degenerate short-series
// variant that carries no recommendation.
func (r *AnalysisResult) Insufficient() bool {
	return r.MarketAnalysis.Regime == RegimeInsufficientData
}
