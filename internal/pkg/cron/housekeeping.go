package cron

import (
	"context"
	"log/slog"

	"github.com/flexidesk/wfh-backend-go/internal/domain/application"
	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/clock"
)

const staleRemark = "Automatically rejected: the requested period started before a decision was made"

// HousekeepingJob sweeps stale state nightly: pending applications whose
// start date has already passed, schedule rows whose application was
// withdrawn, and blacklist windows that ended in the past.
type HousekeepingJob struct {
	applications  application.ApplicationRepository
	schedules     schedule.ScheduleRepository
	blacklists    blacklist.WindowRepository
	clk           clock.Clock
	retentionDays int
}

func NewHousekeepingJob(
	applications application.ApplicationRepository,
	schedules schedule.ScheduleRepository,
	blacklists blacklist.WindowRepository,
	clk clock.Clock,
	retentionDays int,
) *HousekeepingJob {
	return &HousekeepingJob{
		applications:  applications,
		schedules:     schedules,
		blacklists:    blacklists,
		clk:           clk,
		retentionDays: retentionDays,
	}
}

// RejectStalePending marks pending applications as rejected once their
// start date is behind the current time. They can no longer be approved
// meaningfully, and leaving them pending blocks the period for new requests.
func (j *HousekeepingJob) RejectStalePending(ctx context.Context) error {
	cutoff := j.clk.Now()

	count, err := j.applications.RejectPendingBefore(ctx, cutoff, staleRemark)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Rejected stale pending applications", "count", count)
	}
	return nil
}

// CleanOrphanSchedules removes schedule rows whose backing application is
// no longer approved.
func (j *HousekeepingJob) CleanOrphanSchedules(ctx context.Context) error {
	count, err := j.schedules.DeleteOrphans(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Removed orphan schedules", "count", count)
	}
	return nil
}

// PurgeExpiredBlacklists deletes blacklist windows that ended more than
// retentionDays ago. Recent history is kept so managers can review it.
func (j *HousekeepingJob) PurgeExpiredBlacklists(ctx context.Context) error {
	cutoff := j.clk.Now().AddDate(0, 0, -j.retentionDays)

	count, err := j.blacklists.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Purged expired blacklist windows", "count", count)
	}
	return nil
}
