package scheduling

import (
	"testing"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := period.ParseDateTime(s)
	require.NoError(t, err)
	return parsed
}

func TestSplitIntoDayBlocks_SingleDayExactWindows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		label period.Label
	}{
		{"full day", "2024-10-01T09:00:00", "2024-10-01T18:00:00", period.LabelFullDay},
		{"morning", "2024-10-01T09:00:00", "2024-10-01T13:00:00", period.LabelAM},
		{"afternoon", "2024-10-01T14:00:00", "2024-10-01T18:00:00", period.LabelPM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := SplitIntoDayBlocks(mustParse(t, tt.start), mustParse(t, tt.end))
			require.NoError(t, err)
			require.Len(t, blocks, 1)

			assert.Equal(t, tt.label, blocks[0].Label)
			assert.Equal(t, "2024-10-01", blocks[0].Date.Format("2006-01-02"))
			// No time drift: block times are exactly the requested window.
			assert.Equal(t, mustParse(t, tt.start), blocks[0].Start)
			assert.Equal(t, mustParse(t, tt.end), blocks[0].End)
		})
	}
}

func TestSplitIntoDayBlocks_SingleDayPartial(t *testing.T) {
	t.Parallel()

	start := mustParse(t, "2024-10-01T10:30:00")
	end := mustParse(t, "2024-10-01T16:00:00")

	blocks, err := SplitIntoDayBlocks(start, end)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, period.LabelPartial, blocks[0].Label)
	assert.Equal(t, start, blocks[0].Start)
	assert.Equal(t, end, blocks[0].End)
}

func TestSplitIntoDayBlocks_MultiDayFullDays(t *testing.T) {
	t.Parallel()

	blocks, err := SplitIntoDayBlocks(
		mustParse(t, "2024-10-01T09:00:00"),
		mustParse(t, "2024-10-03T18:00:00"),
	)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	for i, want := range []string{"2024-10-01", "2024-10-02", "2024-10-03"} {
		assert.Equal(t, want, blocks[i].Date.Format("2006-01-02"))
		assert.Equal(t, period.LabelFullDay, blocks[i].Label)
	}
}

func TestSplitIntoDayBlocks_BlockCountMatchesDaysSpanned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		start string
		end   string
		days  int
	}{
		{"2024-10-01T15:00:00", "2024-10-02T11:00:00", 2},
		{"2024-10-01", "2024-10-10", 10},
		{"2024-12-30", "2025-01-02", 4},
		{"2024-02-28", "2024-03-01", 3}, // leap year
	}

	for _, tt := range tests {
		start := mustParse(t, tt.start)
		end := mustParse(t, tt.end)
		if len(tt.end) == len("2006-01-02") {
			end = period.EndOfDay(end)
		}
		blocks, err := SplitIntoDayBlocks(start, end)
		require.NoError(t, err)
		assert.Len(t, blocks, tt.days, "%s..%s", tt.start, tt.end)
	}
}

func TestSplitIntoDayBlocks_BoundaryDayLabels(t *testing.T) {
	t.Parallel()

	// Starts mid-afternoon, ends mid-morning two days later.
	blocks, err := SplitIntoDayBlocks(
		mustParse(t, "2024-10-01T14:00:00"),
		mustParse(t, "2024-10-03T12:00:00"),
	)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, period.LabelPM, blocks[0].Label)
	assert.Equal(t, period.LabelFullDay, blocks[1].Label)
	assert.Equal(t, period.LabelAM, blocks[2].Label)
}

func TestSplitIntoDayBlocks_OutsideBusinessHoursStillOneBlockPerDay(t *testing.T) {
	t.Parallel()

	// Ends before business hours on the last day.
	blocks, err := SplitIntoDayBlocks(
		mustParse(t, "2024-10-01T09:00:00"),
		mustParse(t, "2024-10-02T07:00:00"),
	)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, period.LabelFullDay, blocks[0].Label)
	assert.Equal(t, period.LabelAM, blocks[1].Label)

	// Starts after business hours on the first day.
	blocks, err = SplitIntoDayBlocks(
		mustParse(t, "2024-10-01T20:00:00"),
		mustParse(t, "2024-10-02T18:00:00"),
	)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, period.LabelPM, blocks[0].Label)
	assert.Equal(t, period.LabelFullDay, blocks[1].Label)
}

func TestSplitIntoDayBlocks_InvertedRange(t *testing.T) {
	t.Parallel()

	_, err := SplitIntoDayBlocks(
		mustParse(t, "2024-10-05T09:00:00"),
		mustParse(t, "2024-10-01T18:00:00"),
	)
	assert.ErrorIs(t, err, period.ErrInvalidPeriod)
}
