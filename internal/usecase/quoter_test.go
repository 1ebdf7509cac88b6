package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"SwapDesk/internal/domain/models"
	"SwapDesk/internal/loader"
	"SwapDesk/internal/resample"
	"SwapDesk/internal/schedule"
	"SwapDesk/pkg/cache"
)

// fixture runs the startup pipeline over three years of synthetic rates.
func fixture(t *testing.T) (*SwapQuoter, []time.Time) {
	t.Helper()

	var rows []string
	rows = append(rows, "Date,3M,6M")
	day := time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)
	for day.Year() < 1993 {
		rows = append(rows, day.Format("02.01.2006")+",5.0,5.5")
		day = day.AddDate(0, 1, 0)
	}

	series, err := loader.Read(strings.NewReader(strings.Join(rows, "\n")), "", []models.Tenor{models.Tenor3M, models.Tenor6M})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	quarterly := resample.Quarterly(series, []models.Tenor{models.Tenor3M, models.Tenor6M})
	anchors := schedule.ValidAnchors(quarterly, schedule.DefaultExcludeTrailing)
	if len(anchors) == 0 {
		t.Fatalf("no anchors derived")
	}

	q := NewSwapQuoter(quarterly, anchors, models.Tenor3M, cache.NewMemoryCache(), time.Minute, nil, nil)
	return q, anchors
}

func TestQuoteEndToEnd(t *testing.T) {
	q, anchors := fixture(t)

	res, err := q.Quote(context.Background(), anchors[0], 1, 100000, 7.0, 2.0)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	// One-year window starting at the first anchor covers four full quarters
	// plus the quarter whose end falls on the anniversary boundary check.
	if len(res.Cashflows) == 0 {
		t.Fatalf("expected windowed cashflows")
	}
	if len(res.Overlay) <= len(res.Cashflows) {
		t.Fatalf("overlay should cover the full series: %d vs %d", len(res.Overlay), len(res.Cashflows))
	}
	if len(res.Rates) != len(res.Cashflows) {
		t.Fatalf("rate window misaligned: %d vs %d", len(res.Rates), len(res.Cashflows))
	}
	if len(res.Classified.Dates) != len(res.Cashflows) {
		t.Fatalf("classified view misaligned")
	}

	// Constant 5.0 floating + 2.0 spread against 7.0 fixed nets to zero:
	// neither leg dominates anywhere.
	for i := range res.Classified.Dates {
		if res.Classified.FixedDominant[i] != nil || res.Classified.FloatingDominant[i] != nil {
			t.Fatalf("period %d should be unclassified at par", i)
		}
	}
}

func TestQuoteRejectsNonAnchorStart(t *testing.T) {
	q, anchors := fixture(t)

	_, err := q.Quote(context.Background(), anchors[0].AddDate(0, 0, 3), 5, 100000, 7.0, 2.0)
	if err == nil {
		t.Fatalf("expected anchor rejection")
	}
}

func TestQuoteEmptyWindow(t *testing.T) {
	q, anchors := fixture(t)

	// Tenure pushes the window past the data: later anchors keep the start
	// valid while the 10y end is far beyond 1993.
	res, err := q.Quote(context.Background(), anchors[len(anchors)-1], 10, 100000, 7.0, 2.0)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if len(res.Cashflows) == 0 {
		t.Fatalf("window starting inside the series should not be empty")
	}

	// A start after every quarter-end yields an empty window and an empty
	// classified view without error.
	lateAnchors := []time.Time{time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC)}
	late := NewSwapQuoter(q.quarterly, lateAnchors, models.Tenor3M, nil, 0, nil, nil)
	res, err = late.Quote(context.Background(), lateAnchors[0], 5, 100000, 7.0, 2.0)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if len(res.Cashflows) != 0 || len(res.Classified.Dates) != 0 {
		t.Fatalf("expected empty window, got %d records", len(res.Cashflows))
	}
}

func TestQuoteMemoized(t *testing.T) {
	q, anchors := fixture(t)
	ctx := context.Background()

	first, err := q.Quote(ctx, anchors[0], 5, 100000, 7.0, 2.0)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	second, err := q.Quote(ctx, anchors[0], 5, 100000, 7.0, 2.0)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if len(first.Cashflows) != len(second.Cashflows) {
		t.Fatalf("cached quote differs: %d vs %d", len(first.Cashflows), len(second.Cashflows))
	}
	for i := range first.Cashflows {
		a, b := first.Cashflows[i], second.Cashflows[i]
		if !a.PeriodDate.Equal(b.PeriodDate) {
			t.Fatalf("cached quote date differs at %d", i)
		}
		if (a.NetCashFlow == nil) != (b.NetCashFlow == nil) {
			t.Fatalf("cached quote missingness differs at %d", i)
		}
	}
}
