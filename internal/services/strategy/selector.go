package strategy

import (
	"math"
	"sort"

	"OptionPulse/internal/domain/models"
)

// Sizing and strike-construction policy constants. Strikes round to the
// nearest strikeGrid units of the quote currency.
const (
	MaxRiskFraction = 0.08

	strikeGrid = 1000.0

	condorShortOffset  = 0.10
	condorLongOffset   = 0.15
	condorSpreadWidth  = 5000.0
	wingOffset         = 0.05
	directionalOffset  = 0.02
	strikeSpacingRatio = 0.05
	straddleRiskRatio  = 0.1

	condorExpiryDays      = 30
	butterflyExpiryDays   = 30
	directionalExpiryDays = 21
	straddleExpiryDays    = 14
	creditExpiryDays      = 30
)

// Selector scores the catalog against the regime/volatility context and
// derives concrete trade parameters. Stateless and deterministic:
// identical inputs always yield the identical recommendation.
type Selector struct{}

func NewSelector() *Selector { return &Selector{} }

// Recommend picks the highest-scoring strategy. Ties resolve to the
// earliest catalog entry; the two runners-up are ranked as alternatives.
func (s *Selector) Recommend(regime models.Regime, volatility, currentPrice, capital float64) models.StrategyRecommendation {
	scored := make([]models.RankedStrategy, 0, len(Catalog))

	best := 0
	for i, def := range Catalog {
		scored = append(scored, models.RankedStrategy{
			Strategy: def.Name,
			Score:    score(def, regime, volatility),
		})
		if scored[i].Score > scored[best].Score {
			best = i
		}
	}

	winner := Catalog[best]
	alternatives := make([]models.RankedStrategy, 0, len(scored)-1)
	for i, rs := range scored {
		if i != best {
			alternatives = append(alternatives, rs)
		}
	}
	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Score > alternatives[j].Score
	})
	if len(alternatives) > 2 {
		alternatives = alternatives[:2]
	}

	return models.StrategyRecommendation{
		RecommendedStrategy: winner.Name,
		ConfidenceScore:     scored[best].Score,
		Description:         winner.Description,
		ExpectedWinRate:     winner.WinRate,
		TradeParameters:     s.tradeParameters(winner.Name, currentPrice, capital),
		Alternatives:        alternatives,
	}
}

func score(def Definition, regime models.Regime, volatility float64) float64 {
	v := 0.0
	if def.BestRegime == regime {
		v += 0.5
	}

	// High IV favors selling premium, low IV favors buying it.
	switch def.Name {
	case models.IronCondor:
		if volatility > 0.6 {
			v += 0.3
		}
	case models.LongStraddle:
		if volatility < 0.5 {
			v += 0.2
		}
	}

	return v + def.WinRate*0.2
}

// tradeParameters derives the bespoke strike/contract layout per strategy.
// MaxRisk is always the capital-bounded budget, contracts never fall
// below one.
func (s *Selector) tradeParameters(name models.Strategy, price, capital float64) models.TradeParameters {
	maxRisk := capital * MaxRiskFraction

	switch name {
	case models.IronCondor:
		return models.TradeParameters{
			CallShortStrike: roundStrike(price * (1 + condorShortOffset)),
			CallLongStrike:  roundStrike(price * (1 + condorLongOffset)),
			PutShortStrike:  roundStrike(price * (1 - condorShortOffset)),
			PutLongStrike:   roundStrike(price * (1 - condorLongOffset)),
			Contracts:       sizeContracts(maxRisk, condorSpreadWidth),
			ExpirationDays:  condorExpiryDays,
			MaxRisk:         maxRisk,
		}

	case models.ButterflySpread:
		atm := roundStrike(price)
		wing := roundStrike(price * wingOffset)
		return models.TradeParameters{
			LowerStrike:    atm - wing,
			MiddleStrike:   atm,
			UpperStrike:    atm + wing,
			Contracts:      sizeContracts(maxRisk, strikeGrid),
			ExpirationDays: butterflyExpiryDays,
			MaxRisk:        maxRisk,
		}

	case models.BullCallSpread:
		spacing := roundStrike(price * strikeSpacingRatio)
		long := roundStrike(price * (1 + directionalOffset))
		return models.TradeParameters{
			LongStrike:     long,
			ShortStrike:    long + spacing,
			Contracts:      sizeContracts(maxRisk, spacing),
			ExpirationDays: directionalExpiryDays,
			MaxRisk:        maxRisk,
		}

	case models.BearPutSpread:
		spacing := roundStrike(price * strikeSpacingRatio)
		long := roundStrike(price * (1 - directionalOffset))
		return models.TradeParameters{
			LongStrike:     long,
			ShortStrike:    long - spacing,
			Contracts:      sizeContracts(maxRisk, spacing),
			ExpirationDays: directionalExpiryDays,
			MaxRisk:        maxRisk,
		}

	case models.LongStraddle:
		return models.TradeParameters{
			Strike:         roundStrike(price),
			Contracts:      sizeContracts(maxRisk, price*straddleRiskRatio),
			ExpirationDays: straddleExpiryDays,
			MaxRisk:        maxRisk,
		}

	default: // credit_spread
		spacing := roundStrike(price * strikeSpacingRatio)
		short := roundStrike(price * (1 + strikeSpacingRatio))
		return models.TradeParameters{
			ShortStrike:    short,
			LongStrike:     short + spacing,
			Contracts:      sizeContracts(maxRisk, spacing),
			ExpirationDays: creditExpiryDays,
			MaxRisk:        maxRisk,
		}
	}
}

func roundStrike(v float64) float64 {
	return math.Round(v/strikeGrid) * strikeGrid
}

// sizeContracts floors the budget by the per-contract width, clamped to 1.
func sizeContracts(maxRisk, perContract float64) int {
	if perContract <= 0 {
		return 1
	}
	n := int(maxRisk / perContract)
	if n < 1 {
		return 1
	}
	return n
}
