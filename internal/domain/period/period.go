package period

import (
	"fmt"
	"time"
)

// Business hours. A working day is split into a morning and an afternoon
// window with a lunch gap in between; a full day covers both.
const (
	AMStartHour   = 9
	AMEndHour     = 13
	PMStartHour   = 14
	PMEndHour     = 18
	FullStartHour = AMStartHour
	FullEndHour   = PMEndHour
)

// Label classifies one day's WFH coverage.
type Label string

const (
	LabelAM      Label = "AM"
	LabelPM      Label = "PM"
	LabelFullDay Label = "Full Day"
	LabelPartial Label = "Partial Day"
)

// Period is an inclusive [Start, End] datetime range.
type Period struct {
	Start time.Time
	End   time.Time
}

// New builds a Period and enforces Start <= End.
func New(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: %s after %s", ErrInvalidPeriod, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Period{Start: start, End: end}, nil
}

// Contains reports whether the period covers any part of the given calendar
// day, treating bare-date period bounds as whole days.
func (p Period) Contains(date time.Time) bool {
	return !p.Start.After(EndOfDay(date)) && !p.End.Before(StartOfDay(date))
}

// DateBlock is one calendar day's classified coverage. Start and End are
// full datetimes on Date's day.
type DateBlock struct {
	Date  time.Time
	Label Label
	Start time.Time
	End   time.Time
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// At returns a datetime on t's calendar day at the given hour.
func At(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// AMWindow returns the morning business window on t's day.
func AMWindow(t time.Time) (time.Time, time.Time) {
	return At(t, AMStartHour), At(t, AMEndHour)
}

// PMWindow returns the afternoon business window on t's day.
func PMWindow(t time.Time) (time.Time, time.Time) {
	return At(t, PMStartHour), At(t, PMEndHour)
}

// FullDayWindow returns the full business window on t's day.
func FullDayWindow(t time.Time) (time.Time, time.Time) {
	return At(t, FullStartHour), At(t, FullEndHour)
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime normalizes the wire formats the API accepts (bare dates,
// RFC3339, or a local datetime without zone) into a single time.Time.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable datetime %q", ErrInvalidPeriod, s)
}

// ParsePeriod parses a start/end pair and validates ordering. A bare start
// date normalizes to midnight, a bare end date to the end of that day, so
// that date-only periods cover whole days.
func ParsePeriod(start, end string) (Period, error) {
	s, err := ParseDateTime(start)
	if err != nil {
		return Period{}, err
	}
	e, err := ParseDateTime(end)
	if err != nil {
		return Period{}, err
	}
	if len(end) == len("2006-01-02") {
		e = EndOfDay(e)
	}
	return New(s, e)
}
