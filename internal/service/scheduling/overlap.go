package scheduling

import (
	"fmt"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
)

// HasOverlap reports whether any day-level block of the candidate period
// intersects a block of any existing period. Splitting both sides first lets
// heterogeneous shapes (AM-only vs full-day vs multi-day) be compared
// uniformly at day granularity.
//
// label names the comparison category ("pending application", "approved
// schedule", "blacklisted period") and tags any split failure so callers can
// tell which collection held the malformed record. A malformed period is
// never treated as non-overlapping.
func HasOverlap(candidateStart, candidateEnd time.Time, existing []period.Period, label string) (bool, error) {
	candidateBlocks, err := SplitIntoDayBlocks(candidateStart, candidateEnd)
	if err != nil {
		return false, fmt.Errorf("split candidate period against %s: %w", label, err)
	}

	for _, ex := range existing {
		existingBlocks, err := SplitIntoDayBlocks(ex.Start, ex.End)
		if err != nil {
			return false, fmt.Errorf("split %s period: %w", label, err)
		}
		for _, cb := range candidateBlocks {
			for _, eb := range existingBlocks {
				if !period.SameDay(cb.Date, eb.Date) {
					continue
				}
				if blocksOverlap(cb, eb) {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

// blocksOverlap applies the interval test to two same-day blocks. The second
// disjunct guards zero-width boundary conditions and is kept deliberately
// even where the general test subsumes it.
func blocksOverlap(candidate, existing period.DateBlock) bool {
	if candidate.Start.Before(existing.End) && candidate.End.After(existing.Start) {
		return true
	}
	return candidate.Start.Before(existing.Start) && candidate.End.After(existing.Start)
}
