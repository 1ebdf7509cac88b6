// Package resample aggregates an irregular daily rate series into regular
// calendar-quarter averages.
package resample

import (
	"SwapDesk/internal/domain/models"
	"SwapDesk/pkg/util"
)

// Quarterly groups observations by calendar quarter and emits one entry per
// quarter from the first to the last quarter touched by the input, labeled by
// quarter-end date. Per tenor the entry carries the arithmetic mean of the
// quarter's observations; a quarter with no observations yields nil means
// rather than an error. Pure function of its input.
func Quarterly(series models.RateSeries, tenors []models.Tenor) models.QuarterlyRateSeries {
	if len(series) == 0 {
		return nil
	}

	type bucket struct {
		sum   map[models.Tenor]float64
		count map[models.Tenor]int
	}

	buckets := make(map[string]*bucket)
	for _, obs := range series {
		key := util.QuarterStart(obs.Date).Format("2006-01-02")
		b := buckets[key]
		if b == nil {
			b = &bucket{
				sum:   make(map[models.Tenor]float64, len(tenors)),
				count: make(map[models.Tenor]int, len(tenors)),
			}
			buckets[key] = b
		}
		for _, t := range tenors {
			if v, ok := obs.Rates[t]; ok {
				b.sum[t] += v
				b.count[t]++
			}
		}
	}

	// Walk every quarter in the span so gap quarters still get an entry.
	first := util.QuarterStart(series.First())
	last := util.QuarterStart(series.Last())

	var out models.QuarterlyRateSeries
	for qs := first; !qs.After(last); qs = qs.AddDate(0, 3, 0) {
		entry := models.QuarterRate{
			QuarterEnd: util.QuarterEnd(qs),
			Means:      make(map[models.Tenor]*float64, len(tenors)),
		}
		if b := buckets[qs.Format("2006-01-02")]; b != nil {
			for _, t := range tenors {
				if n := b.count[t]; n > 0 {
					mean := b.sum[t] / float64(n)
					entry.Means[t] = &mean
				} else {
					entry.Means[t] = nil
				}
			}
		} else {
			for _, t := range tenors {
				entry.Means[t] = nil
			}
		}
		out = append(out, entry)
	}
	return out
}
