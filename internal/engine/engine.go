// Package engine computes fixed and floating leg payments per quarterly
// period for an interest rate swap contract.
package engine

import (
	"SwapDesk/internal/domain/models"
)

// quarterFraction models exact quarterly periods regardless of actual day
// count; day-count conventions are out of scope.
const quarterFraction = 0.25

// Result carries the cashflow records over the entire quarterly series and
// the inclusive contract-window view over the same records. The full series
// feeds the historical overlay chart; the window feeds everything else.
type Result struct {
	Full   models.CashflowSeries
	Window models.CashflowSeries
}

// Compute builds one CashflowRecord per quarter of the whole series:
//
//	floating = notional * (rate + spread) / 100 * 1/4
//	fixed    = notional * fixedRate / 100 * 1/4
//	net      = fixed - floating
//
// tenor selects the floating index column. Quarters whose mean rate is
// missing propagate nil payments and net, never a substituted zero. The
// window is a pure date filter over the full sequence.
func Compute(series models.QuarterlyRateSeries, tenor models.Tenor, p models.ContractParameters) Result {
	full := make(models.CashflowSeries, 0, len(series))

	fixed := p.Notional * p.FixedRatePct / 100 * quarterFraction
	for _, q := range series {
		rec := models.CashflowRecord{PeriodDate: q.QuarterEnd}
		if rate := q.Mean(tenor); rate != nil {
			floating := p.Notional * (*rate + p.SpreadPct) / 100 * quarterFraction
			net := fixed - floating

			f := fixed
			r := *rate
			rec.FloatingRatePct = &r
			rec.FloatingPayment = &floating
			rec.FixedPayment = &f
			rec.NetCashFlow = &net
		}
		full = append(full, rec)
	}

	return Result{
		Full:   full,
		Window: full.Window(p.Start, p.End()),
	}
}
