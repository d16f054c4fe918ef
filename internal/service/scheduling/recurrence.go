package scheduling

import (
	"fmt"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
)

// RecurrenceUnit is the cadence of a recurring application or blacklist.
type RecurrenceUnit string

const (
	UnitDay   RecurrenceUnit = "day"
	UnitWeek  RecurrenceUnit = "week"
	UnitMonth RecurrenceUnit = "month"
)

// RecurrenceRule repeats a period every Unit until (exclusive) Until.
type RecurrenceRule struct {
	Unit  RecurrenceUnit
	Until time.Time
}

// Valid reports whether the unit is one of the supported cadences.
func (u RecurrenceUnit) Valid() bool {
	return u == UnitDay || u == UnitWeek || u == UnitMonth
}

// maxRecurrenceInstances bounds an expansion at a year of daily recurrence;
// anything past that is a pathological bound date.
const maxRecurrenceInstances = 366

// ValidateFunc checks one shifted instance against pending applications,
// approved schedules and blacklist windows. A non-nil return aborts the
// whole expansion.
type ValidateFunc func(start, end time.Time) error

// ExpandRecurrence generates the recurring siblings of [start, end], each
// shifted one more rule.Unit than the last, while the shifted start still
// precedes rule.Until. Every instance is validated before it is emitted;
// the first failure aborts with a RecurrenceError carrying that instance.
//
// The expander itself performs no writes. Callers materialize the returned
// instances inside a single transaction so a mid-series failure leaves
// nothing behind.
func ExpandRecurrence(start, end time.Time, rule RecurrenceRule, validate ValidateFunc) ([]period.Period, error) {
	if !rule.Unit.Valid() {
		return nil, fmt.Errorf("unknown recurrence unit %q", rule.Unit)
	}

	var instances []period.Period
	currentStart, currentEnd := start, end
	for {
		currentStart = shift(currentStart, rule.Unit)
		currentEnd = shift(currentEnd, rule.Unit)
		if !currentStart.Before(rule.Until) {
			return instances, nil
		}
		if len(instances) >= maxRecurrenceInstances {
			return nil, ErrRecurrenceTooLong
		}
		if err := validate(currentStart, currentEnd); err != nil {
			return nil, &RecurrenceError{Start: currentStart, End: currentEnd, Err: err}
		}
		instances = append(instances, period.Period{Start: currentStart, End: currentEnd})
	}
}

func shift(t time.Time, unit RecurrenceUnit) time.Time {
	switch unit {
	case UnitDay:
		return t.AddDate(0, 0, 1)
	case UnitWeek:
		return t.AddDate(0, 0, 7)
	default:
		return t.AddDate(0, 1, 0)
	}
}
