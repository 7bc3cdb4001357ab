package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

type AnalyzeRequest struct {
	// Volatility may be omitted; the handler then falls back to the
	// historical volatility of the supplied bars.
	Bars       []PriceBar `json:"bars" validate:"required,min=1"`
	Volatility float64    `json:"volatility" validate:"gte=0,lte=10"`
	Capital    float64    `json:"capital" default:"5000" validate:"gt=0"`
}

type PriceRequest struct {
	Spot       float64 `json:"spot" validate:"required,gt=0"`
	Strike     float64 `json:"strike" validate:"required,gt=0"`
	ExpiryDays float64 `json:"expiry_days" validate:"gte=0"`
	Rate       float64 `json:"rate" default:"0.05" validate:"gte=0,lte=1"`
	Volatility float64 `json:"volatility" validate:"required,gt=0,lte=10"`
	Side       string  `json:"side" default:"call" validate:"oneof=call put"`
}

type ImpliedVolRequest struct {
	Spot        float64 `json:"spot" validate:"required,gt=0"`
	Strike      float64 `json:"strike" validate:"required,gt=0"`
	ExpiryDays  float64 `json:"expiry_days" validate:"required,gt=0"`
	Rate        float64 `json:"rate" default:"0.05" validate:"gte=0,lte=1"`
	MarketPrice float64 `json:"market_price" validate:"required,gt=0"`
	Side        string  `json:"side" default:"call" validate:"oneof=call put"`
}

type SimulateRequest struct {
	Spot       float64 `json:"spot" validate:"required,gt=0"`
	Strike     float64 `json:"strike" validate:"required,gt=0"`
	ExpiryDays float64 `json:"expiry_days" validate:"required,gt=0"`
	Rate       float64 `json:"rate" default:"0.05" validate:"gte=0,lte=1"`
	Volatility float64 `json:"volatility" validate:"required,gt=0,lte=10"`
	Side       string  `json:"side" default:"call" validate:"oneof=call put"`
	NumPaths   int     `json:"num_paths" default:"10000" validate:"gte=100,lte=1000000"`
	Seed       int64   `json:"seed"`
}

type IronCondorRequest struct {
	Spot       float64 `json:"spot" validate:"required,gt=0"`
	CallShort  float64 `json:"call_short_strike" validate:"required,gt=0"`
	CallLong   float64 `json:"call_long_strike" validate:"required,gt=0,gtfield=CallShort"`
	PutShort   float64 `json:"put_short_strike" validate:"required,gt=0"`
	PutLong    float64 `json:"put_long_strike" validate:"required,gt=0,ltfield=PutShort"`
	ExpiryDays float64 `json:"expiry_days" validate:"required,gt=0"`
	Rate       float64 `json:"rate" default:"0.05" validate:"gte=0,lte=1"`
	Volatility float64 `json:"volatility" validate:"required,gt=0,lte=10"`
}

type ButterflyRequest struct {
	Spot       float64 `json:"spot" validate:"required,gt=0"`
	Lower      float64 `json:"lower_strike" validate:"required,gt=0"`
	Middle     float64 `json:"middle_strike" validate:"required,gt=0,gtfield=Lower"`
	Upper      float64 `json:"upper_strike" validate:"required,gt=0,gtfield=Middle"`
	ExpiryDays float64 `json:"expiry_days" validate:"required,gt=0"`
	Rate       float64 `json:"rate" default:"0.05" validate:"gte=0,lte=1"`
	Volatility float64 `json:"volatility" validate:"required,gt=0,lte=10"`
	Side       string  `json:"side" default:"call" validate:"oneof=call put"`
}
