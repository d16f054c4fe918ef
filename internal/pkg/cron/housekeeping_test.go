package cron

import (
	"context"
	"testing"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/application"
	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplicationRepo struct {
	application.ApplicationRepository
	rejectedBefore time.Time
	rejectRemark   string
}

func (r *fakeApplicationRepo) RejectPendingBefore(ctx context.Context, cutoff time.Time, remark string) (int64, error) {
	r.rejectedBefore = cutoff
	r.rejectRemark = remark
	return 2, nil
}

type fakeScheduleRepo struct {
	schedule.ScheduleRepository
	orphansDeleted bool
}

func (r *fakeScheduleRepo) DeleteOrphans(ctx context.Context) (int64, error) {
	r.orphansDeleted = true
	return 1, nil
}

type fakeBlacklistRepo struct {
	blacklist.WindowRepository
	purgedBefore time.Time
}

func (r *fakeBlacklistRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.purgedBefore = cutoff
	return 3, nil
}

func TestHousekeeping_UsesInjectedClock(t *testing.T) {
	now := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
	apps := &fakeApplicationRepo{}
	schedules := &fakeScheduleRepo{}
	blacklists := &fakeBlacklistRepo{}

	job := NewHousekeepingJob(apps, schedules, blacklists, clock.Fixed(now), 90)

	require.NoError(t, job.RejectStalePending(context.Background()))
	assert.Equal(t, now, apps.rejectedBefore)
	assert.NotEmpty(t, apps.rejectRemark)

	require.NoError(t, job.CleanOrphanSchedules(context.Background()))
	assert.True(t, schedules.orphansDeleted)

	require.NoError(t, job.PurgeExpiredBlacklists(context.Background()))
	assert.Equal(t, now.AddDate(0, 0, -90), blacklists.purgedBefore)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var ran []string
	s.AddJob("a", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "a")
		return nil
	})
	s.AddJob("b", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "b")
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"a", "b"}, ran)
}
