package response

import (
	"errors"
	"net/http"

	"github.com/flexidesk/wfh-backend-go/internal/domain/application"
	"github.com/flexidesk/wfh-backend-go/internal/domain/auth"
	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/employee"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
	"github.com/flexidesk/wfh-backend-go/internal/domain/user"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/validator"
	"github.com/flexidesk/wfh-backend-go/internal/service/scheduling"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Scheduling engine errors carry structured detail.
	var overlapErr *scheduling.OverlapError
	if errors.As(err, &overlapErr) {
		Conflict(w, "The requested period overlaps an existing "+overlapErr.Category)
		return
	}
	var recurrenceErr *scheduling.RecurrenceError
	if errors.As(err, &recurrenceErr) {
		HandleError(w, recurrenceErr.Err)
		return
	}

	switch {
	// Period errors
	case errors.Is(err, period.ErrInvalidPeriod):
		BadRequest(w, "Invalid period", nil)
	case errors.Is(err, scheduling.ErrRecurrenceTooLong):
		BadRequest(w, "Recurrence would generate too many instances", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Forbidden(w, "No account registered for this Google email")

	// User and employee domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerAccessRequired), errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNotReportingTo):
		Forbidden(w, "Employee does not report to you")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrApplicationProcessed):
		Conflict(w, "Application already processed")
	case errors.Is(err, application.ErrNotApproved):
		Conflict(w, "Application is not approved")
	case errors.Is(err, application.ErrNotOwner):
		Forbidden(w, "Application belongs to another employee")
	case errors.Is(err, application.ErrPeriodInPast):
		BadRequest(w, "Period starts in the past", nil)
	case errors.Is(err, application.ErrWithdrawnDatesOutside):
		BadRequest(w, "Withdrawn dates fall outside the application period", nil)
	case errors.Is(err, application.ErrNothingLeftToWithdraw):
		BadRequest(w, "No withdrawable dates named", nil)
	case errors.Is(err, application.ErrRecurrenceNeedsEndDate):
		BadRequest(w, "Recurring application requires a recurrence end date", nil)
	case errors.Is(err, application.ErrScheduleMissing):
		Conflict(w, "No schedule matches the approved application")

	// Schedule and blacklist domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, blacklist.ErrWindowNotFound):
		NotFound(w, "Blacklist window not found")
	case errors.Is(err, blacklist.ErrNotWindowOwner):
		Forbidden(w, "Blacklist window belongs to another manager")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
