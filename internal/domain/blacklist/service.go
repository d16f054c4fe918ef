package blacklist

import (
	"context"
	"time"
)

type WindowService interface {
	// Create declares a blacklist window, optionally expanded by a
	// recurrence rule; each instance is validated against the manager's
	// existing windows and the whole series is persisted atomically.
	Create(ctx context.Context, req CreateWindowRequest) ([]Window, error)

	List(ctx context.Context, managerUserID string, from, to *time.Time) ([]Window, error)
	Update(ctx context.Context, req UpdateWindowRequest) (Window, error)
	Delete(ctx context.Context, managerUserID, windowID string) error
}
