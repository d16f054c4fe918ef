package blacklist

import "time"

// Window is a manager-declared period during which subordinates may not
// request WFH. CRUD is manager-only; lifecycle is independent of
// applications and schedules.
type Window struct {
	ID        string
	CreatedBy string
	StartDate time.Time
	EndDate   time.Time
	Remarks   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
