package scheduling

import (
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
)

const dateKeyLayout = "2006-01-02"

// ExtractRemainingDates partitions allDates into the maximal runs of dates
// that survive a partial withdrawal. A withdrawn date closes the current run;
// order within and across runs follows the input ordering, so concatenating
// the runs with the withdrawn dates reinserted reproduces allDates exactly.
//
// An empty or fully withdrawn input yields no runs.
func ExtractRemainingDates(allDates, withdrawnDates []time.Time) [][]time.Time {
	withdrawn := make(map[string]struct{}, len(withdrawnDates))
	for _, d := range withdrawnDates {
		withdrawn[d.Format(dateKeyLayout)] = struct{}{}
	}

	var runs [][]time.Time
	var current []time.Time
	for _, d := range allDates {
		if _, gone := withdrawn[d.Format(dateKeyLayout)]; gone {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		current = append(current, d)
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// DatesBetween lists every calendar date from start to end inclusive,
// normalized to midnight. It feeds ExtractRemainingDates for withdrawals
// that name individual days of an approved period.
func DatesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := period.StartOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
