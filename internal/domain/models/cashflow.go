package models

import "time"

// CashflowRecord holds the swap payments for one quarterly period. Nil fields
// mark quarters where the floating index had no observations; missingness
// propagates, it is never replaced by zero.
type CashflowRecord struct {
	PeriodDate      time.Time `json:"period_date"`
	FloatingRatePct *float64  `json:"floating_rate_pct"`
	FloatingPayment *float64  `json:"floating_payment"`
	FixedPayment    *float64  `json:"fixed_payment"`
	NetCashFlow     *float64  `json:"net_cash_flow"`
}

// CashflowSeries is an ordered sequence of per-quarter cashflow records.
type CashflowSeries []CashflowRecord

// Window returns the records whose period date falls within [start, end]
// inclusive. Idempotent pure filter, no recomputation.
func (s CashflowSeries) Window(start, end time.Time) CashflowSeries {
	out := make(CashflowSeries, 0, len(s))
	for _, r := range s {
		if r.PeriodDate.Before(start) || r.PeriodDate.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ClassifiedView splits a windowed net-cash-flow series into two sequences
// aligned on the same dates. Per period at most one of the two is non-nil:
// FixedDominant where net cash flow is strictly positive, FloatingDominant
// where strictly negative, both nil on zero or missing net.
type ClassifiedView struct {
	Dates            []time.Time `json:"dates"`
	FixedDominant    []*float64  `json:"fixed_dominant"`
	FloatingDominant []*float64  `json:"floating_dominant"`
	Zero             float64     `json:"zero"`
}
