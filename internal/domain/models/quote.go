package models

import "time"

// DateOnlyLayout is the wire format for anchor and contract start dates.
const DateOnlyLayout = "2006-01-02"

// AnchorSet is the contract-parameter surface offered to the presentation
// layer: the valid start dates plus the slider bounds and defaults. Anchors
// are formatted in DateOnlyLayout so clients can send a chosen value back as
// the quote start verbatim.
type AnchorSet struct {
	Anchors  []string        `json:"anchors"`
	Bounds   ParameterBounds `json:"bounds"`
	Defaults QuoteDefaults   `json:"defaults"`
}

// NewAnchorSet builds the anchor surface from the valid start dates.
func NewAnchorSet(anchors []time.Time) AnchorSet {
	out := make([]string, 0, len(anchors))
	for _, a := range anchors {
		out = append(out, a.Format(DateOnlyLayout))
	}
	return AnchorSet{
		Anchors:  out,
		Bounds:   DefaultBounds(),
		Defaults: Defaults(),
	}
}

// ParameterBounds mirrors the contract constants for client-side widgets.
type ParameterBounds struct {
	TenureYears [2]int     `json:"tenure_years"`
	Notional    [2]float64 `json:"notional"`
	FixedRate   [2]float64 `json:"fixed_rate_pct"`
	Spread      [2]float64 `json:"spread_pct"`
	RateStep    float64    `json:"rate_step_pct"`
}

// QuoteDefaults carries the demo's default contract.
type QuoteDefaults struct {
	TenureYears int     `json:"tenure_years"`
	Notional    float64 `json:"notional"`
	FixedRate   float64 `json:"fixed_rate_pct"`
	Spread      float64 `json:"spread_pct"`
}

// DefaultBounds returns the bounds derived from the contract constants.
func DefaultBounds() ParameterBounds {
	return ParameterBounds{
		TenureYears: [2]int{MinTenureYears, MaxTenureYears},
		Notional:    [2]float64{MinNotional, MaxNotional},
		FixedRate:   [2]float64{MinFixedRatePct, MaxFixedRatePct},
		Spread:      [2]float64{MinSpreadPct, MaxSpreadPct},
		RateStep:    RateStepPct,
	}
}

// Defaults returns the demo contract defaults.
func Defaults() QuoteDefaults {
	return QuoteDefaults{
		TenureYears: DefaultTenureYears,
		Notional:    DefaultNotional,
		FixedRate:   DefaultFixedRatePct,
		Spread:      DefaultSpreadPct,
	}
}

// QuoteResult is everything the presentation layer needs to render one
// contract: the rate trend during the contract window, the windowed payment
// records, the full-series overlay, and the classified net cash flow.
type QuoteResult struct {
	Contract   ContractParameters  `json:"contract"`
	Rates      QuarterlyRateSeries `json:"rates"`
	Cashflows  CashflowSeries      `json:"cashflows"`
	Overlay    CashflowSeries      `json:"overlay"`
	Classified ClassifiedView      `json:"classified"`
}
