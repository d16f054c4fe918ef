package application

import (
	"context"

	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
)

type ApplicationService interface {
	// Submit validates the requested period against the employee's pending
	// applications, approved schedules and the manager's blacklist windows,
	// expands recurrence, and persists the resulting applications
	// atomically.
	Submit(ctx context.Context, req CreateApplicationRequest) ([]Application, error)

	GetByID(ctx context.Context, userID, applicationID string) (Application, error)
	ListMine(ctx context.Context, userID string) ([]Application, error)
	ListPendingForManager(ctx context.Context, managerUserID string) ([]Application, error)

	// ListMySchedules returns the caller's committed WFH schedule.
	ListMySchedules(ctx context.Context, userID string) ([]schedule.Schedule, error)

	// Approve and Reject decide a pending application; only the reporting
	// manager of the application's owner may decide.
	Approve(ctx context.Context, managerUserID string, req DecideApplicationRequest) (Application, error)
	Reject(ctx context.Context, managerUserID string, req DecideApplicationRequest) (Application, error)

	// RequestWithdrawal records the employee's wish to withdraw their own
	// approved application; the actual withdrawal needs the manager.
	RequestWithdrawal(ctx context.Context, userID string, req WithdrawRequest) error

	// Withdraw is the manager operation. Without dates the whole period is
	// withdrawn; with dates the surviving contiguous runs replace the
	// original application and schedule.
	Withdraw(ctx context.Context, managerUserID string, req WithdrawRequest) ([]Application, error)
}
