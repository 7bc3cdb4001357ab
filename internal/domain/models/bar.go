package models

import "time"

// PriceBar is a single OHLCV record, immutable once fetched.
type PriceBar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// PriceSeries is a chronological sequence of bars with no duplicate
// timestamps. Regime analysis needs at least MinBarsForAnalysis of them.
type PriceSeries []PriceBar

// MinBarsForAnalysis is the shortest series the regime classifier accepts.
const MinBarsForAnalysis = 20

// Closes extracts the close column.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Last returns the most recent bar and true, or a zero bar and false
// when the series is empty.
func (s PriceSeries) Last() (PriceBar, bool) {
	if len(s) == 0 {
		return PriceBar{}, false
	}
	return s[len(s)-1], true
}
