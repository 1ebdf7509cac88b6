package models

// Requests for swap HTTP endpoints. Defined in domain for consistency and reuse.

type QuoteRequest struct {
	Start     string  `query:"start" json:"start" validate:"required"`
	Tenure    int     `query:"tenure" json:"tenure" default:"5" validate:"gte=1,lte=10"`
	Notional  float64 `query:"notional" json:"notional" default:"100000" validate:"gte=1000,lte=250000"`
	FixedRate float64 `query:"fixed_rate" json:"fixed_rate" default:"7.0" validate:"gte=1,lte=10"`
	// Spread is a pointer because zero is a valid value; the default fills
	// only an omitted (nil) field, never an explicit zero.
	Spread *float64 `query:"spread" json:"spread" default:"2.0" validate:"required,gte=0,lte=5"`
}
