package blacklist

import "github.com/flexidesk/wfh-backend-go/internal/pkg/validator"

type CreateWindowRequest struct {
	// Filled from JWT claims.
	ManagerID string `json:"-"`

	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Remarks   *string `json:"remarks,omitempty"`

	RecurrenceUnit    string `json:"recurrence_unit,omitempty"`
	RecurrenceEndDate string `json:"recurrence_end_date,omitempty"`
}

func (r *CreateWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDateOrDateTime(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a date or ISO8601 timestamp"})
	}
	if _, ok := validator.IsValidDateOrDateTime(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a date or ISO8601 timestamp"})
	}
	if r.RecurrenceUnit != "" {
		if !validator.IsInSlice(r.RecurrenceUnit, []string{"day", "week", "month"}) {
			errs = append(errs, validator.ValidationError{Field: "recurrence_unit", Message: "recurrence_unit must be 'day', 'week' or 'month'"})
		}
		if _, ok := validator.IsValidDate(r.RecurrenceEndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "recurrence_end_date", Message: "recurrence_end_date must be a date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWindowRequest struct {
	ID        string  `json:"-"`
	ManagerID string  `json:"-"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Remarks   *string `json:"remarks,omitempty"`
}

func (r *UpdateWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a UUID"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDateOrDateTime(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a date or ISO8601 timestamp"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDateOrDateTime(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a date or ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
