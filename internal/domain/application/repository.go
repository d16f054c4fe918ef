package application

import (
	"context"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
)

// ApplicationRepository - interface for wfh_applications table
type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Application, error)
	ListPendingByManager(ctx context.Context, managerID string) ([]Application, error)

	// PendingPeriods returns the {start, end} tuples of the employee's
	// pending applications for overlap checks.
	PendingPeriods(ctx context.Context, employeeID string) ([]period.Period, error)

	Update(ctx context.Context, req UpdateApplicationRequest) error

	// RejectPendingBefore auto-rejects pending applications whose start
	// date precedes cutoff; returns how many were rejected.
	RejectPendingBefore(ctx context.Context, cutoff time.Time, remark string) (int64, error)
}
