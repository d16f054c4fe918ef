package application

import (
	"github.com/flexidesk/wfh-backend-go/internal/pkg/validator"
)

type RecurrenceRequest struct {
	Unit    string `json:"unit"` // day, week, month
	EndDate string `json:"end_date"`
}

type CreateApplicationRequest struct {
	// Filled from JWT claims, not the body.
	UserID string `json:"-"`

	StartDate        string             `json:"start_date"`
	EndDate          string             `json:"end_date"`
	Type             string             `json:"type"`
	RequestorRemarks string             `json:"requestor_remarks"`
	Recurrence       *RecurrenceRequest `json:"recurrence,omitempty"`
}

func (r *CreateApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if _, ok := validator.IsValidDateOrDateTime(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a date or ISO8601 timestamp"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if _, ok := validator.IsValidDateOrDateTime(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a date or ISO8601 timestamp"})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeRegular), string(TypeAdHoc)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be 'regular' or 'ad_hoc'"})
	}
	if r.Recurrence != nil {
		if !validator.IsInSlice(r.Recurrence.Unit, []string{"day", "week", "month"}) {
			errs = append(errs, validator.ValidationError{Field: "recurrence.unit", Message: "unit must be 'day', 'week' or 'month'"})
		}
		if _, ok := validator.IsValidDate(r.Recurrence.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "recurrence.end_date", Message: "end_date must be a date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideApplicationRequest struct {
	ApplicationID   string `json:"application_id"`
	ApproverRemarks string `json:"approver_remarks"`
}

func (r *DecideApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{Field: "application_id", Message: "application_id must be a UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WithdrawRequest withdraws an approved application. With no Dates it
// withdraws the whole period; with Dates it withdraws only those days and
// the surviving contiguous runs are re-materialized as new records.
type WithdrawRequest struct {
	ApplicationID     string   `json:"application_id"`
	WithdrawalRemarks string   `json:"withdrawal_remarks"`
	Dates             []string `json:"dates,omitempty"`
}

func (r *WithdrawRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{Field: "application_id", Message: "application_id must be a UUID"})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must be YYYY-MM-DD"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateApplicationRequest carries the mutable fields of a status change.
type UpdateApplicationRequest struct {
	ID                string
	Status            *string
	ApproverRemarks   *string
	WithdrawalRemarks *string
	VerifyBy          *string
}
