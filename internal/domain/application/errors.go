package application

import "errors"

var (
	ErrApplicationNotFound    = errors.New("application not found")
	ErrPeriodInPast           = errors.New("period starts in the past")
	ErrApplicationProcessed   = errors.New("application already processed")
	ErrNotApproved            = errors.New("application is not approved")
	ErrNotOwner               = errors.New("application belongs to another employee")
	ErrWithdrawnDatesOutside  = errors.New("withdrawn dates fall outside the application period")
	ErrNothingLeftToWithdraw  = errors.New("withdrawal names no dates inside the application period")
	ErrRecurrenceNeedsEndDate = errors.New("recurring application requires a recurrence end date")
	ErrScheduleMissing        = errors.New("no schedule matches the approved application")
)
