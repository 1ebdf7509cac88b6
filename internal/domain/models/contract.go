package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Contract parameter bounds. These mirror the ranges the presentation layer
// offers; the constructor enforces them so out-of-range values never reach
// the cashflow engine.
const (
	MinTenureYears = 1
	MaxTenureYears = 10

	MinNotional = 1000.0
	MaxNotional = 250000.0

	MinFixedRatePct = 1.0
	MaxFixedRatePct = 10.0

	MinSpreadPct = 0.0
	MaxSpreadPct = 5.0

	// RateStepPct is the granularity of fixed rate and spread inputs.
	RateStepPct = 0.1
)

// Sidebar defaults of the demo contract.
const (
	DefaultTenureYears  = 5
	DefaultNotional     = 100000.0
	DefaultFixedRatePct = 7.0
	DefaultSpreadPct    = 2.0
)

// ErrNotAnAnchor marks a start date outside the valid anchor set.
var ErrNotAnAnchor = errors.New("start date is not a valid quarter anchor")

// ContractParameters describes one interest rate swap contract instance.
// Construct via NewContractParameters; a zero value is not meaningful.
type ContractParameters struct {
	Start        time.Time `json:"start"`
	TenureYears  int       `json:"tenure_years"`
	Notional     float64   `json:"notional"`
	FixedRatePct float64   `json:"fixed_rate_pct"`
	SpreadPct    float64   `json:"spread_pct"`
}

// End derives the contract end date: start plus tenure calendar years, same
// month and day. Standard calendar semantics, no leap-day special-casing.
func (p ContractParameters) End() time.Time {
	return p.Start.AddDate(p.TenureYears, 0, 0)
}

// NewContractParameters validates user parameters against the contract bounds
// and the anchor set, and returns an immutable parameter value. The anchor
// check is skipped when anchors is nil (library use with a caller-managed
// schedule).
func NewContractParameters(start time.Time, tenureYears int, notional, fixedRatePct, spreadPct float64, anchors []time.Time) (ContractParameters, error) {
	if tenureYears < MinTenureYears || tenureYears > MaxTenureYears {
		return ContractParameters{}, fmt.Errorf("tenure_years %d out of range [%d, %d]", tenureYears, MinTenureYears, MaxTenureYears)
	}
	if notional < MinNotional || notional > MaxNotional {
		return ContractParameters{}, fmt.Errorf("notional %.2f out of range [%.0f, %.0f]", notional, MinNotional, MaxNotional)
	}
	if fixedRatePct < MinFixedRatePct || fixedRatePct > MaxFixedRatePct {
		return ContractParameters{}, fmt.Errorf("fixed_rate_pct %.2f out of range [%.1f, %.1f]", fixedRatePct, MinFixedRatePct, MaxFixedRatePct)
	}
	if spreadPct < MinSpreadPct || spreadPct > MaxSpreadPct {
		return ContractParameters{}, fmt.Errorf("spread_pct %.2f out of range [%.1f, %.1f]", spreadPct, MinSpreadPct, MaxSpreadPct)
	}
	if !onStep(fixedRatePct) {
		return ContractParameters{}, fmt.Errorf("fixed_rate_pct %.4f is not a multiple of %.1f", fixedRatePct, RateStepPct)
	}
	if !onStep(spreadPct) {
		return ContractParameters{}, fmt.Errorf("spread_pct %.4f is not a multiple of %.1f", spreadPct, RateStepPct)
	}
	if anchors != nil && !containsDate(anchors, start) {
		return ContractParameters{}, fmt.Errorf("%w: %s", ErrNotAnAnchor, start.Format(DateOnlyLayout))
	}

	return ContractParameters{
		Start:        start,
		TenureYears:  tenureYears,
		Notional:     notional,
		FixedRatePct: fixedRatePct,
		SpreadPct:    spreadPct,
	}, nil
}

func onStep(v float64) bool {
	steps := v / RateStepPct
	return math.Abs(steps-math.Round(steps)) < 1e-6
}

func containsDate(dates []time.Time, d time.Time) bool {
	for _, a := range dates {
		if a.Equal(d) {
			return true
		}
	}
	return false
}
