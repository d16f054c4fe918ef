package blacklist

import (
	"context"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
)

// WindowRepository - interface for blacklist_windows table
type WindowRepository interface {
	Create(ctx context.Context, w Window) (Window, error)
	GetByID(ctx context.Context, id string) (Window, error)
	ListByManager(ctx context.Context, managerID string, from, to *time.Time) ([]Window, error)

	// WindowPeriods returns the manager's window {start, end} tuples for
	// overlap checks against a subordinate's candidate period.
	WindowPeriods(ctx context.Context, managerID string) ([]period.Period, error)

	Update(ctx context.Context, w Window) error
	Delete(ctx context.Context, id string) error

	// DeleteExpiredBefore purges windows that ended before cutoff;
	// returns how many were removed.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
