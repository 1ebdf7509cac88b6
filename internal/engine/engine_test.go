package engine

import (
	"math"
	"testing"
	"time"

	"SwapDesk/internal/domain/models"
)

func qrate(y int, m time.Month, d int, rate *float64) models.QuarterRate {
	return models.QuarterRate{
		QuarterEnd: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Means:      map[models.Tenor]*float64{models.Tenor3M: rate},
	}
}

func f(v float64) *float64 { return &v }

func params(t *testing.T, start time.Time, tenure int, notional, fixed, spread float64) models.ContractParameters {
	t.Helper()
	p, err := models.NewContractParameters(start, tenure, notional, fixed, spread, nil)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	return p
}

func TestComputePaymentFormulas(t *testing.T) {
	series := models.QuarterlyRateSeries{qrate(2010, time.March, 31, f(5.0))}
	p := params(t, time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), 5, 100000, 7.0, 2.0)

	res := Compute(series, models.Tenor3M, p)
	if len(res.Full) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Full))
	}

	rec := res.Full[0]
	if rec.FloatingPayment == nil || math.Abs(*rec.FloatingPayment-1750.0) > 1e-9 {
		t.Fatalf("unexpected floating payment %v", rec.FloatingPayment)
	}
	if rec.FixedPayment == nil || math.Abs(*rec.FixedPayment-1750.0) > 1e-9 {
		t.Fatalf("unexpected fixed payment %v", rec.FixedPayment)
	}
	if rec.NetCashFlow == nil || math.Abs(*rec.NetCashFlow) > 1e-9 {
		t.Fatalf("unexpected net cash flow %v", rec.NetCashFlow)
	}
}

func TestComputeMissingRatePropagates(t *testing.T) {
	series := models.QuarterlyRateSeries{
		qrate(2010, time.March, 31, f(5.0)),
		qrate(2010, time.June, 30, nil),
		qrate(2010, time.September, 30, f(4.0)),
	}
	p := params(t, time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), 5, 100000, 7.0, 2.0)

	res := Compute(series, models.Tenor3M, p)
	if len(res.Full) != 3 {
		t.Fatalf("expected record per quarter, got %d", len(res.Full))
	}

	gap := res.Full[1]
	if gap.FloatingRatePct != nil || gap.FloatingPayment != nil || gap.FixedPayment != nil || gap.NetCashFlow != nil {
		t.Fatalf("expected nil payments for missing quarter, got %+v", gap)
	}
}

func TestComputeWindowIsInclusive(t *testing.T) {
	series := models.QuarterlyRateSeries{
		qrate(2009, time.December, 31, f(5.0)),
		qrate(2010, time.March, 31, f(5.0)),
		qrate(2011, time.March, 31, f(5.0)),
		qrate(2011, time.June, 30, f(5.0)),
	}
	// One-year window [2010-01-01, 2011-01-01]: exactly the 2010 quarters.
	p := params(t, time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), 1, 100000, 7.0, 2.0)

	res := Compute(series, models.Tenor3M, p)
	if len(res.Full) != 4 {
		t.Fatalf("full series truncated: %d", len(res.Full))
	}
	if len(res.Window) != 1 {
		t.Fatalf("expected 1 windowed record, got %d", len(res.Window))
	}
	if !res.Window[0].PeriodDate.Equal(series[1].QuarterEnd) {
		t.Fatalf("unexpected windowed date %v", res.Window[0].PeriodDate)
	}
}

func TestWindowIdempotent(t *testing.T) {
	series := models.QuarterlyRateSeries{
		qrate(2010, time.March, 31, f(5.0)),
		qrate(2010, time.June, 30, f(4.0)),
	}
	p := params(t, time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), 5, 100000, 7.0, 2.0)

	res := Compute(series, models.Tenor3M, p)
	again := res.Window.Window(p.Start, p.End())
	if len(again) != len(res.Window) {
		t.Fatalf("window not idempotent: %d vs %d", len(again), len(res.Window))
	}
	for i := range again {
		if !again[i].PeriodDate.Equal(res.Window[i].PeriodDate) {
			t.Fatalf("window not idempotent at %d", i)
		}
	}
}

func TestComputeEmptyWindow(t *testing.T) {
	series := models.QuarterlyRateSeries{qrate(2010, time.March, 31, f(5.0))}
	// Start far past the available data.
	p := params(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), 5, 100000, 7.0, 2.0)

	res := Compute(series, models.Tenor3M, p)
	if len(res.Window) != 0 {
		t.Fatalf("expected empty window, got %d records", len(res.Window))
	}
}
