package classify

import (
	"testing"
	"time"

	"SwapDesk/internal/domain/models"
)

func rec(d time.Time, net *float64) models.CashflowRecord {
	return models.CashflowRecord{PeriodDate: d, NetCashFlow: net}
}

func f(v float64) *float64 { return &v }

func TestSplitExclusivity(t *testing.T) {
	base := time.Date(2010, time.March, 31, 0, 0, 0, 0, time.UTC)
	window := models.CashflowSeries{
		rec(base, f(250.0)),
		rec(base.AddDate(0, 3, 0), f(-120.0)),
		rec(base.AddDate(0, 6, 0), f(0.0)),
		rec(base.AddDate(0, 9, 0), nil),
	}

	view := Split(window)
	if len(view.Dates) != len(window) {
		t.Fatalf("dates not aligned: %d vs %d", len(view.Dates), len(window))
	}

	for i := range view.Dates {
		if view.FixedDominant[i] != nil && view.FloatingDominant[i] != nil {
			t.Fatalf("period %d classified as both dominant", i)
		}
	}

	if view.FixedDominant[0] == nil || *view.FixedDominant[0] != 250.0 {
		t.Fatalf("expected fixed-dominant at 0")
	}
	if view.FloatingDominant[1] == nil || *view.FloatingDominant[1] != -120.0 {
		t.Fatalf("expected floating-dominant at 1")
	}
	// Zero and missing net belong to neither side.
	for _, i := range []int{2, 3} {
		if view.FixedDominant[i] != nil || view.FloatingDominant[i] != nil {
			t.Fatalf("period %d should be unclassified", i)
		}
	}
}

func TestSplitEmptyWindow(t *testing.T) {
	view := Split(nil)
	if len(view.Dates) != 0 || len(view.FixedDominant) != 0 || len(view.FloatingDominant) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	net := 100.0
	window := models.CashflowSeries{rec(time.Date(2010, time.March, 31, 0, 0, 0, 0, time.UTC), &net)}

	view := Split(window)
	*view.FixedDominant[0] = -1

	if *window[0].NetCashFlow != 100.0 {
		t.Fatalf("input mutated through view")
	}
}
