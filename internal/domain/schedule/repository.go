package schedule

import (
	"context"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
)

// ScheduleRepository - interface for wfh_schedules table
type ScheduleRepository interface {
	Create(ctx context.Context, s Schedule) (Schedule, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Schedule, error)

	// ApprovedPeriods returns the employee's schedule {start, end} tuples
	// for overlap checks.
	ApprovedPeriods(ctx context.Context, employeeID string) ([]period.Period, error)

	// ListCovering returns every schedule touching the given calendar day,
	// across all employees, for the aggregation engine's bulk read.
	ListCovering(ctx context.Context, day time.Time) ([]Schedule, error)

	// DeleteMatching removes the schedule materialized for an approved
	// application, matched by owner and exact period.
	DeleteMatching(ctx context.Context, employeeID string, start, end time.Time) error

	// DeleteOrphans removes schedules with no matching approved
	// application; returns how many were deleted.
	DeleteOrphans(ctx context.Context) (int64, error)
}
