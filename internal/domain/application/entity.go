package application

import "time"

// Type distinguishes regular (planned) WFH from ad-hoc, same-week requests.
type Type string

const (
	TypeRegular Type = "regular"
	TypeAdHoc   Type = "ad_hoc"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// Application is an employee's request for a WFH period.
//
// Lifecycle: created pending by an employee; approved or rejected by the
// reporting manager; an approved application may later be withdrawn (by
// employee request needing re-approval, or directly by the manager).
// Pending applications past their start date are auto-rejected by
// housekeeping.
type Application struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time

	Type   Type
	Status Status

	RequestorRemarks  string
	ApproverRemarks   *string
	WithdrawalRemarks *string

	VerifyBy        *string
	VerifyTimestamp *time.Time

	RecurrenceUnit *string
	RecurrenceEnd  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}
