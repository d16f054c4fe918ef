package scheduling

import (
	"testing"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePeriod(t *testing.T, start, end string) period.Period {
	t.Helper()
	p, err := period.ParsePeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestHasOverlap_EmptyExisting(t *testing.T) {
	t.Parallel()

	p := datePeriod(t, "2024-10-05", "2024-10-15")
	overlap, err := HasOverlap(p.Start, p.End, nil, CategoryPending)
	require.NoError(t, err)
	assert.False(t, overlap)
}

func TestHasOverlap_DateRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate [2]string
		existing  [2]string
		want      bool
	}{
		{"partial overlap", [2]string{"2024-10-05", "2024-10-15"}, [2]string{"2024-10-01", "2024-10-10"}, true},
		{"contained", [2]string{"2024-10-03", "2024-10-04"}, [2]string{"2024-10-01", "2024-10-10"}, true},
		{"same single day", [2]string{"2024-10-01", "2024-10-01"}, [2]string{"2024-10-01", "2024-10-01"}, true},
		{"adjacent days", [2]string{"2024-10-11", "2024-10-12"}, [2]string{"2024-10-01", "2024-10-10"}, false},
		{"disjoint", [2]string{"2024-11-01", "2024-11-05"}, [2]string{"2024-10-01", "2024-10-10"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := datePeriod(t, tt.candidate[0], tt.candidate[1])
			ex := datePeriod(t, tt.existing[0], tt.existing[1])

			overlap, err := HasOverlap(cand.Start, cand.End, []period.Period{ex}, CategoryApproved)
			require.NoError(t, err)
			assert.Equal(t, tt.want, overlap)

			// Symmetric under swapping candidate and existing.
			swapped, err := HasOverlap(ex.Start, ex.End, []period.Period{cand}, CategoryApproved)
			require.NoError(t, err)
			assert.Equal(t, tt.want, swapped)
		})
	}
}

func TestHasOverlap_SubDayWindows(t *testing.T) {
	t.Parallel()

	am := datePeriod(t, "2024-10-01T09:00:00", "2024-10-01T13:00:00")
	pm := datePeriod(t, "2024-10-01T14:00:00", "2024-10-01T18:00:00")
	full := datePeriod(t, "2024-10-01T09:00:00", "2024-10-01T18:00:00")

	overlap, err := HasOverlap(am.Start, am.End, []period.Period{pm}, CategoryPending)
	require.NoError(t, err)
	assert.False(t, overlap, "AM and PM windows must not collide")

	overlap, err = HasOverlap(am.Start, am.End, []period.Period{full}, CategoryPending)
	require.NoError(t, err)
	assert.True(t, overlap, "AM collides with a full day")

	overlap, err = HasOverlap(full.Start, full.End, []period.Period{pm}, CategoryPending)
	require.NoError(t, err)
	assert.True(t, overlap, "full day collides with PM")
}

func TestHasOverlap_MalformedExistingPropagatesLabel(t *testing.T) {
	t.Parallel()

	cand := datePeriod(t, "2024-10-05", "2024-10-06")
	inverted := period.Period{Start: cand.End, End: cand.Start}

	_, err := HasOverlap(cand.Start, cand.End, []period.Period{inverted}, CategoryBlacklist)
	require.Error(t, err)
	assert.ErrorIs(t, err, period.ErrInvalidPeriod)
	assert.Contains(t, err.Error(), CategoryBlacklist)
}
