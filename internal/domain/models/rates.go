package models

import "time"

// Tenor is the maturity label of a floating-rate index observation.
type Tenor string

const (
	Tenor3M Tenor = "3M"
	Tenor6M Tenor = "6M"
)

// RateObservation is one dated row of the floating-rate index table.
// Only rows where every requested tenor was present survive loading.
type RateObservation struct {
	Date  time.Time
	Rates map[Tenor]float64 // percent per tenor
}

// RateSeries is an ordered sequence of observations, dates unique and ascending.
// Immutable once loaded.
type RateSeries []RateObservation

// First returns the earliest observation date.
func (s RateSeries) First() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[0].Date
}

// Last returns the latest observation date.
func (s RateSeries) Last() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Date
}

// QuarterRate is one calendar quarter of averaged index rates, labeled by the
// quarter-end date. A nil mean marks a quarter with no underlying observations.
type QuarterRate struct {
	QuarterEnd time.Time          `json:"quarter_end"`
	Means      map[Tenor]*float64 `json:"means"`
}

// Mean returns the averaged rate for a tenor, nil when the quarter was empty.
func (q QuarterRate) Mean(t Tenor) *float64 {
	if q.Means == nil {
		return nil
	}
	return q.Means[t]
}

// QuarterlyRateSeries is an ordered sequence of contiguous calendar quarters.
// Every quarter between the first and last source observation is present,
// gap quarters included.
type QuarterlyRateSeries []QuarterRate

// Window returns the entries whose quarter-end falls within [start, end]
// inclusive. Pure filter; windowing an already-windowed series with the same
// bounds returns an identical result.
func (s QuarterlyRateSeries) Window(start, end time.Time) QuarterlyRateSeries {
	out := make(QuarterlyRateSeries, 0, len(s))
	for _, q := range s {
		if q.QuarterEnd.Before(start) || q.QuarterEnd.After(end) {
			continue
		}
		out = append(out, q)
	}
	return out
}
