package scheduling

import (
	"fmt"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
)

// SplitIntoDayBlocks decomposes [start, end] into one classified block per
// calendar day touched, in chronological order. Blocks labeled AM, PM or
// Full Day carry the canonical business-window times; Partial Day blocks
// carry the literal covered times clamped to their day.
//
// The function is pure: no I/O, no clock reads.
func SplitIntoDayBlocks(start, end time.Time) ([]period.DateBlock, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start %s after end %s",
			period.ErrInvalidPeriod, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	if period.SameDay(start, end) {
		return []period.DateBlock{classifySingleDay(start, end)}, nil
	}

	var blocks []period.DateBlock
	for day := period.StartOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		covStart := day
		if period.SameDay(day, start) {
			covStart = start
		}
		covEnd := period.EndOfDay(day)
		if period.SameDay(day, end) {
			covEnd = end
		}
		blocks = append(blocks, classifyCovered(day, covStart, covEnd))
	}
	return blocks, nil
}

// classifySingleDay handles a period confined to one calendar day: only an
// exact match to a business window earns its label, anything else is partial.
func classifySingleDay(start, end time.Time) period.DateBlock {
	day := period.StartOfDay(start)
	amStart, amEnd := period.AMWindow(day)
	pmStart, pmEnd := period.PMWindow(day)
	fullStart, fullEnd := period.FullDayWindow(day)

	switch {
	case start.Equal(amStart) && end.Equal(amEnd):
		return period.DateBlock{Date: day, Label: period.LabelAM, Start: amStart, End: amEnd}
	case start.Equal(pmStart) && end.Equal(pmEnd):
		return period.DateBlock{Date: day, Label: period.LabelPM, Start: pmStart, End: pmEnd}
	case start.Equal(fullStart) && end.Equal(fullEnd):
		return period.DateBlock{Date: day, Label: period.LabelFullDay, Start: fullStart, End: fullEnd}
	default:
		return period.DateBlock{Date: day, Label: period.LabelPartial, Start: start, End: end}
	}
}

// classifyCovered labels the covered interval of one day inside a multi-day
// period. Full days are matched first so interior days never degrade to
// partial blocks.
func classifyCovered(day, covStart, covEnd time.Time) period.DateBlock {
	amStart, amEnd := period.AMWindow(day)
	pmStart, pmEnd := period.PMWindow(day)
	fullStart, fullEnd := period.FullDayWindow(day)

	switch {
	case !covStart.After(fullStart) && !covEnd.Before(fullEnd):
		return period.DateBlock{Date: day, Label: period.LabelFullDay, Start: fullStart, End: fullEnd}
	case !covEnd.After(amEnd):
		return period.DateBlock{Date: day, Label: period.LabelAM, Start: amStart, End: amEnd}
	case !covStart.Before(pmStart):
		return period.DateBlock{Date: day, Label: period.LabelPM, Start: pmStart, End: pmEnd}
	default:
		return period.DateBlock{Date: day, Label: period.LabelPartial, Start: covStart, End: covEnd}
	}
}
