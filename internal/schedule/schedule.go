// Package schedule derives contract start anchors and end dates from a
// quarterly rate series.
package schedule

import (
	"time"

	"SwapDesk/internal/domain/models"
	"SwapDesk/pkg/util"
)

// DefaultExcludeTrailing reserves the most recent quarters so a contract of
// reasonable tenure still has data ahead of its start.
const DefaultExcludeTrailing = 4

// ValidAnchors maps each quarterly entry to its quarter-start date and drops
// the trailing excludeTrailing entries. Anchors come back oldest first.
// A negative excludeTrailing is treated as the default.
func ValidAnchors(series models.QuarterlyRateSeries, excludeTrailing int) []time.Time {
	if excludeTrailing < 0 {
		excludeTrailing = DefaultExcludeTrailing
	}
	if len(series) <= excludeTrailing {
		return nil
	}

	anchors := make([]time.Time, 0, len(series)-excludeTrailing)
	for _, q := range series[:len(series)-excludeTrailing] {
		anchors = append(anchors, util.QuarterStart(q.QuarterEnd))
	}
	return anchors
}

// ContractEnd returns start plus tenureYears calendar years, same month and
// day. The result is not clamped to the available series; downstream
// windowing simply yields a shorter or empty result.
func ContractEnd(start time.Time, tenureYears int) time.Time {
	return util.AddYears(start, tenureYears)
}
