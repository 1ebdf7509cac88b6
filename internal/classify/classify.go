// Package classify splits windowed net cash flows by dominant leg.
package classify

import (
	"time"

	"SwapDesk/internal/domain/models"
)

// Split produces two sequences aligned to the window dates: fixed-dominant
// holds the net cash flow where it is strictly positive, floating-dominant
// where strictly negative. Zero or missing net contributes to neither.
// Stateless; the input is not mutated.
func Split(window models.CashflowSeries) models.ClassifiedView {
	view := models.ClassifiedView{
		Dates:            make([]time.Time, 0, len(window)),
		FixedDominant:    make([]*float64, 0, len(window)),
		FloatingDominant: make([]*float64, 0, len(window)),
	}

	for _, rec := range window {
		view.Dates = append(view.Dates, rec.PeriodDate)

		var fixed, floating *float64
		if net := rec.NetCashFlow; net != nil {
			switch {
			case *net > 0:
				v := *net
				fixed = &v
			case *net < 0:
				v := *net
				floating = &v
			}
		}
		view.FixedDominant = append(view.FixedDominant, fixed)
		view.FloatingDominant = append(view.FloatingDominant, floating)
	}
	return view
}
