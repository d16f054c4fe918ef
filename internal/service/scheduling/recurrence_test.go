package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptAll(start, end time.Time) error { return nil }

func TestExpandRecurrence_Weekly(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2024-10-01")
	end, _ := time.Parse("2006-01-02", "2024-10-02")
	until, _ := time.Parse("2006-01-02", "2024-10-29")

	instances, err := ExpandRecurrence(start, end, RecurrenceRule{Unit: UnitWeek, Until: until}, acceptAll)
	require.NoError(t, err)
	require.Len(t, instances, 3)

	assert.Equal(t, "2024-10-08", instances[0].Start.Format("2006-01-02"))
	assert.Equal(t, "2024-10-09", instances[0].End.Format("2006-01-02"))
	assert.Equal(t, "2024-10-15", instances[1].Start.Format("2006-01-02"))
	assert.Equal(t, "2024-10-22", instances[2].Start.Format("2006-01-02"))
}

func TestExpandRecurrence_MonthlyStopsAtBound(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2024-01-15")
	end, _ := time.Parse("2006-01-02", "2024-01-15")
	until, _ := time.Parse("2006-01-02", "2024-04-15")

	instances, err := ExpandRecurrence(start, end, RecurrenceRule{Unit: UnitMonth, Until: until}, acceptAll)
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, "2024-02-15", instances[0].Start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-15", instances[1].Start.Format("2006-01-02"))
}

func TestExpandRecurrence_BoundBeforeFirstShift(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2024-10-01")
	until, _ := time.Parse("2006-01-02", "2024-10-02")

	instances, err := ExpandRecurrence(start, start, RecurrenceRule{Unit: UnitDay, Until: until}, acceptAll)
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestExpandRecurrence_ValidationAborts(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2024-10-01")
	until, _ := time.Parse("2006-01-02", "2024-10-10")

	conflict := &OverlapError{Category: CategoryBlacklist}
	calls := 0
	validate := func(s, e time.Time) error {
		calls++
		if calls == 3 {
			return conflict
		}
		return nil
	}

	_, err := ExpandRecurrence(start, start, RecurrenceRule{Unit: UnitDay, Until: until}, validate)
	require.Error(t, err)

	var recErr *RecurrenceError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "2024-10-04", recErr.Start.Format("2006-01-02"))

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, CategoryBlacklist, overlapErr.Category)
}

func TestExpandRecurrence_TooManyInstances(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2024-01-01")
	until, _ := time.Parse("2006-01-02", "2030-01-01")

	_, err := ExpandRecurrence(start, start, RecurrenceRule{Unit: UnitDay, Until: until}, acceptAll)
	assert.ErrorIs(t, err, ErrRecurrenceTooLong)
}

func TestExpandRecurrence_UnknownUnit(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2024-01-01")
	_, err := ExpandRecurrence(start, start, RecurrenceRule{Unit: "fortnight", Until: start}, acceptAll)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrRecurrenceTooLong))
}
