package strategy

import "OptionPulse/internal/domain/models"

// Definition carries the static policy constants of one catalog strategy.
type Definition struct {
	Name        models.Strategy
	BestRegime  models.Regime
	WinRate     float64
	Description string
}

// Catalog is the closed set of supported strategies. The slice order is a
// determinism contract: scoring ties resolve to the first entry, so this
// must stay an ordered list, never a map.
var Catalog = []Definition{
	{
		Name:        models.IronCondor,
		BestRegime:  models.RegimeRanging,
		WinRate:     0.65,
		Description: "Profit from low volatility and range-bound markets",
	},
	{
		Name:        models.ButterflySpread,
		BestRegime:  models.RegimeRanging,
		WinRate:     0.55,
		Description: "Profit from price staying near a specific level",
	},
	{
		Name:        models.BullCallSpread,
		BestRegime:  models.RegimeBullishTrend,
		WinRate:     0.60,
		Description: "Profit from moderate bullish movement",
	},
	{
		Name:        models.BearPutSpread,
		BestRegime:  models.RegimeBearishTrend,
		WinRate:     0.60,
		Description: "Profit from moderate bearish movement",
	},
	{
		Name:        models.LongStraddle,
		BestRegime:  models.RegimeHighVolatility,
		WinRate:     0.45,
		Description: "Profit from large price movements in either direction",
	},
	{
		Name:        models.CreditSpread,
		BestRegime:  models.RegimeRanging,
		WinRate:     0.62,
		Description: "Collect premium with defined risk",
	},
}

// Lookup returns the catalog definition for a strategy name.
func Lookup(name models.Strategy) (Definition, bool) {
	for _, def := range Catalog {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// IsPremiumSelling reports whether the strategy collects premium up front.
func IsPremiumSelling(name models.Strategy) bool {
	return name == models.IronCondor || name == models.CreditSpread
}
