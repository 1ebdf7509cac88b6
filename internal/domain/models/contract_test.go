package models

import (
	"errors"
	"testing"
	"time"
)

var anchor = time.Date(2004, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestNewContractParameters(t *testing.T) {
	p, err := NewContractParameters(anchor, 5, 100000, 7.0, 2.0, []time.Time{anchor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.End().Equal(time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", p.End())
	}
}

func TestNewContractParametersRanges(t *testing.T) {
	cases := []struct {
		name     string
		tenure   int
		notional float64
		fixed    float64
		spread   float64
	}{
		{"tenure low", 0, 100000, 7.0, 2.0},
		{"tenure high", 11, 100000, 7.0, 2.0},
		{"notional low", 5, 999, 7.0, 2.0},
		{"notional high", 5, 250001, 7.0, 2.0},
		{"fixed low", 5, 100000, 0.9, 2.0},
		{"fixed high", 5, 100000, 10.1, 2.0},
		{"spread negative", 5, 100000, 7.0, -0.1},
		{"spread high", 5, 100000, 7.0, 5.1},
		{"fixed off step", 5, 100000, 7.05, 2.0},
		{"spread off step", 5, 100000, 7.0, 2.03},
	}

	for _, tc := range cases {
		if _, err := NewContractParameters(anchor, tc.tenure, tc.notional, tc.fixed, tc.spread, []time.Time{anchor}); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestNewContractParametersAnchorMembership(t *testing.T) {
	notAnchor := anchor.AddDate(0, 0, 1)
	_, err := NewContractParameters(notAnchor, 5, 100000, 7.0, 2.0, []time.Time{anchor})
	if !errors.Is(err, ErrNotAnAnchor) {
		t.Fatalf("expected ErrNotAnAnchor, got %v", err)
	}

	// Nil anchor set skips membership.
	if _, err := NewContractParameters(notAnchor, 5, 100000, 7.0, 2.0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
