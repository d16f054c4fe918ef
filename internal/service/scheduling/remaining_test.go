package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(t *testing.T, dates ...string) []time.Time {
	t.Helper()
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		parsed, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		out = append(out, parsed)
	}
	return out
}

func TestExtractRemainingDates_SplitsAroundWithdrawnDays(t *testing.T) {
	t.Parallel()

	all := days(t, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05")
	withdrawn := days(t, "2024-01-02", "2024-01-03")

	runs := ExtractRemainingDates(all, withdrawn)
	require.Len(t, runs, 2)
	assert.Equal(t, days(t, "2024-01-01"), runs[0])
	assert.Equal(t, days(t, "2024-01-04", "2024-01-05"), runs[1])
}

func TestExtractRemainingDates_NothingWithdrawn(t *testing.T) {
	t.Parallel()

	all := days(t, "2024-01-01", "2024-01-02", "2024-01-03")
	runs := ExtractRemainingDates(all, nil)
	require.Len(t, runs, 1)
	assert.Equal(t, all, runs[0])
}

func TestExtractRemainingDates_EverythingWithdrawn(t *testing.T) {
	t.Parallel()

	all := days(t, "2024-01-01", "2024-01-02")
	assert.Empty(t, ExtractRemainingDates(all, all))
	assert.Empty(t, ExtractRemainingDates(nil, nil))
}

func TestExtractRemainingDates_Reconstruction(t *testing.T) {
	t.Parallel()

	all := days(t, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06")
	withdrawn := days(t, "2024-01-01", "2024-01-04", "2024-01-06")

	runs := ExtractRemainingDates(all, withdrawn)
	require.Len(t, runs, 2)

	// Flattened runs hold exactly the non-withdrawn dates, in input order,
	// so reinserting the withdrawn dates reconstructs the original sequence.
	var flattened []time.Time
	for _, run := range runs {
		flattened = append(flattened, run...)
	}
	assert.Equal(t, days(t, "2024-01-02", "2024-01-03", "2024-01-05"), flattened)
}

func TestDatesBetween(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2024-03-30")
	end, _ := time.Parse("2006-01-02", "2024-04-02")

	dates := DatesBetween(start, end)
	assert.Equal(t, days(t, "2024-03-30", "2024-03-31", "2024-04-01", "2024-04-02"), dates)
}
