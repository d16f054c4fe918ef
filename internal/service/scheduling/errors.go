package scheduling

import (
	"errors"
	"fmt"
	"time"
)

// Overlap categories reported back to the requester. The category names the
// kind of existing record the candidate period collided with.
const (
	CategoryPending   = "pending application"
	CategoryApproved  = "approved schedule"
	CategoryBlacklist = "blacklisted period"
)

// OverlapError reports a candidate period conflicting with existing records.
type OverlapError struct {
	Category string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("period overlaps an existing %s", e.Category)
}

// ErrRecurrenceTooLong caps runaway expansions whose bound date would
// generate more instances than a year of daily recurrence.
var ErrRecurrenceTooLong = errors.New("recurrence generates too many instances")

// RecurrenceError reports the instance whose validation aborted an expansion.
type RecurrenceError struct {
	Start time.Time
	End   time.Time
	Err   error
}

func (e *RecurrenceError) Error() string {
	return fmt.Sprintf("recurrence aborted at instance %s - %s: %v",
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"), e.Err)
}

func (e *RecurrenceError) Unwrap() error { return e.Err }
