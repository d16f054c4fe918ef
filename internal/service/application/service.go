package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/application"
	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/employee"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/clock"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/database"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/email"
	"github.com/flexidesk/wfh-backend-go/internal/service/scheduling"
)

const dateFormat = "2006-01-02"

type service struct {
	tx           database.TxRunner
	applications application.ApplicationRepository
	schedules    schedule.ScheduleRepository
	blacklists   blacklist.WindowRepository
	employees    employee.EmployeeRepository
	emailService email.Service
	clk          clock.Clock
}

func NewService(
	tx database.TxRunner,
	applications application.ApplicationRepository,
	schedules schedule.ScheduleRepository,
	blacklists blacklist.WindowRepository,
	employees employee.EmployeeRepository,
	emailService email.Service,
	clk clock.Clock,
) application.ApplicationService {
	return &service{
		tx:           tx,
		applications: applications,
		schedules:    schedules,
		blacklists:   blacklists,
		employees:    employees,
		emailService: emailService,
		clk:          clk,
	}
}

func (s *service) Submit(ctx context.Context, req application.CreateApplicationRequest) ([]application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	p, err := period.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if p.Start.Before(period.StartOfDay(s.clk.Now())) {
		return nil, application.ErrPeriodInPast
	}

	validate, err := s.overlapValidator(ctx, emp)
	if err != nil {
		return nil, err
	}
	if err := validate(p.Start, p.End); err != nil {
		return nil, err
	}

	base := application.Application{
		EmployeeID:       emp.ID,
		StartDate:        p.Start,
		EndDate:          p.End,
		Type:             application.Type(req.Type),
		Status:           application.StatusPending,
		RequestorRemarks: req.RequestorRemarks,
	}

	instances, err := s.expandRecurrence(p, req.Recurrence, validate, &base)
	if err != nil {
		return nil, err
	}

	// All instances validated up front, so either the whole series is
	// persisted or none of it.
	var created []application.Application
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		app, err := s.applications.Create(txCtx, base)
		if err != nil {
			return err
		}
		created = append(created, app)

		for _, inst := range instances {
			app, err := s.applications.Create(txCtx, application.Application{
				EmployeeID:       emp.ID,
				StartDate:        inst.Start,
				EndDate:          inst.End,
				Type:             base.Type,
				Status:           application.StatusPending,
				RequestorRemarks: base.RequestorRemarks,
			})
			if err != nil {
				return err
			}
			created = append(created, app)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifySubmitted(ctx, emp, p)

	return created, nil
}

func (s *service) GetByID(ctx context.Context, userID, applicationID string) (application.Application, error) {
	emp, err := s.employees.GetByUserID(ctx, userID)
	if err != nil {
		return application.Application{}, err
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return application.Application{}, err
	}

	if app.EmployeeID != emp.ID && !s.isManagerOf(ctx, emp.ID, app.EmployeeID) {
		return application.Application{}, application.ErrNotOwner
	}

	return app, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]application.Application, error) {
	emp, err := s.employees.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.applications.ListByEmployee(ctx, emp.ID)
}

func (s *service) ListMySchedules(ctx context.Context, userID string) ([]schedule.Schedule, error) {
	emp, err := s.employees.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.schedules.ListByEmployee(ctx, emp.ID)
}

func (s *service) ListPendingForManager(ctx context.Context, managerUserID string) ([]application.Application, error) {
	mgr, err := s.employees.GetByUserID(ctx, managerUserID)
	if err != nil {
		return nil, err
	}
	return s.applications.ListPendingByManager(ctx, mgr.ID)
}

func (s *service) Approve(ctx context.Context, managerUserID string, req application.DecideApplicationRequest) (application.Application, error) {
	return s.decide(ctx, managerUserID, req, application.StatusApproved)
}

func (s *service) Reject(ctx context.Context, managerUserID string, req application.DecideApplicationRequest) (application.Application, error) {
	return s.decide(ctx, managerUserID, req, application.StatusRejected)
}

func (s *service) decide(ctx context.Context, managerUserID string, req application.DecideApplicationRequest, status application.Status) (application.Application, error) {
	if err := req.Validate(); err != nil {
		return application.Application{}, err
	}

	mgr, err := s.employees.GetByUserID(ctx, managerUserID)
	if err != nil {
		return application.Application{}, err
	}

	app, err := s.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return application.Application{}, err
	}
	if app.Status != application.StatusPending {
		return application.Application{}, application.ErrApplicationProcessed
	}

	owner, err := s.employees.GetByID(ctx, app.EmployeeID)
	if err != nil {
		return application.Application{}, err
	}
	if owner.ReportingManagerID == nil || *owner.ReportingManagerID != mgr.ID {
		return application.Application{}, employee.ErrNotReportingTo
	}

	statusStr := string(status)
	var remarks *string
	if req.ApproverRemarks != "" {
		remarks = &req.ApproverRemarks
	}

	// Approval materializes the schedule record in the same transaction,
	// so an approved application never lacks its schedule.
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		err := s.applications.Update(txCtx, application.UpdateApplicationRequest{
			ID:              app.ID,
			Status:          &statusStr,
			ApproverRemarks: remarks,
			VerifyBy:        &mgr.ID,
		})
		if err != nil {
			return err
		}

		if status == application.StatusApproved {
			_, err = s.schedules.Create(txCtx, schedule.Schedule{
				EmployeeID: app.EmployeeID,
				StartDate:  app.StartDate,
				EndDate:    app.EndDate,
			})
		}
		return err
	})
	if err != nil {
		return application.Application{}, err
	}

	decided, err := s.applications.GetByID(ctx, app.ID)
	if err != nil {
		return application.Application{}, err
	}

	s.notifyDecided(owner, decided)

	return decided, nil
}

func (s *service) RequestWithdrawal(ctx context.Context, userID string, req application.WithdrawRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employees.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	app, err := s.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return err
	}
	if app.EmployeeID != emp.ID {
		return application.ErrNotOwner
	}
	if app.Status != application.StatusApproved {
		return application.ErrNotApproved
	}

	return s.applications.Update(ctx, application.UpdateApplicationRequest{
		ID:                app.ID,
		WithdrawalRemarks: &req.WithdrawalRemarks,
	})
}

func (s *service) Withdraw(ctx context.Context, managerUserID string, req application.WithdrawRequest) ([]application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mgr, err := s.employees.GetByUserID(ctx, managerUserID)
	if err != nil {
		return nil, err
	}

	app, err := s.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != application.StatusApproved {
		return nil, application.ErrNotApproved
	}

	owner, err := s.employees.GetByID(ctx, app.EmployeeID)
	if err != nil {
		return nil, err
	}
	if owner.ReportingManagerID == nil || *owner.ReportingManagerID != mgr.ID {
		return nil, employee.ErrNotReportingTo
	}

	if len(req.Dates) == 0 {
		return nil, s.withdrawWhole(ctx, app, mgr.ID, req.WithdrawalRemarks)
	}
	return s.withdrawDates(ctx, app, mgr.ID, req)
}

func (s *service) withdrawWhole(ctx context.Context, app application.Application, managerID, remarks string) error {
	statusStr := string(application.StatusWithdrawn)
	var withdrawalRemarks *string
	if remarks != "" {
		withdrawalRemarks = &remarks
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		err := s.applications.Update(txCtx, application.UpdateApplicationRequest{
			ID:                app.ID,
			Status:            &statusStr,
			WithdrawalRemarks: withdrawalRemarks,
			VerifyBy:          &managerID,
		})
		if err != nil {
			return err
		}

		err = s.schedules.DeleteMatching(txCtx, app.EmployeeID, app.StartDate, app.EndDate)
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return application.ErrScheduleMissing
		}
		return err
	})
}

// withdrawDates removes only the named days. The surviving contiguous runs
// of the original period are re-materialized as new approved applications
// with their own schedules, replacing the original atomically.
func (s *service) withdrawDates(ctx context.Context, app application.Application, managerID string, req application.WithdrawRequest) ([]application.Application, error) {
	withdrawn := make([]time.Time, 0, len(req.Dates))
	for _, d := range req.Dates {
		day, err := period.ParseDateTime(d)
		if err != nil {
			return nil, err
		}
		if day.Before(period.StartOfDay(app.StartDate)) || day.After(period.EndOfDay(app.EndDate)) {
			return nil, application.ErrWithdrawnDatesOutside
		}
		withdrawn = append(withdrawn, day)
	}
	if len(withdrawn) == 0 {
		return nil, application.ErrNothingLeftToWithdraw
	}

	allDates := scheduling.DatesBetween(app.StartDate, app.EndDate)
	runs := scheduling.ExtractRemainingDates(allDates, withdrawn)

	statusStr := string(application.StatusWithdrawn)
	var withdrawalRemarks *string
	if req.WithdrawalRemarks != "" {
		withdrawalRemarks = &req.WithdrawalRemarks
	}

	var replacements []application.Application
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		err := s.applications.Update(txCtx, application.UpdateApplicationRequest{
			ID:                app.ID,
			Status:            &statusStr,
			WithdrawalRemarks: withdrawalRemarks,
			VerifyBy:          &managerID,
		})
		if err != nil {
			return err
		}

		err = s.schedules.DeleteMatching(txCtx, app.EmployeeID, app.StartDate, app.EndDate)
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return application.ErrScheduleMissing
		}
		if err != nil {
			return err
		}

		for _, run := range runs {
			start, end := s.runBounds(run, app)

			replacement, err := s.applications.Create(txCtx, application.Application{
				EmployeeID:       app.EmployeeID,
				StartDate:        start,
				EndDate:          end,
				Type:             app.Type,
				Status:           application.StatusApproved,
				RequestorRemarks: app.RequestorRemarks,
				ApproverRemarks:  app.ApproverRemarks,
				VerifyBy:         &managerID,
			})
			if err != nil {
				return err
			}
			replacements = append(replacements, replacement)

			_, err = s.schedules.Create(txCtx, schedule.Schedule{
				EmployeeID: app.EmployeeID,
				StartDate:  start,
				EndDate:    end,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return replacements, nil
}

// runBounds keeps the original literal times on boundary days; interior
// run edges snap to business day bounds.
func (s *service) runBounds(run []time.Time, app application.Application) (time.Time, time.Time) {
	first, last := run[0], run[len(run)-1]

	start := period.At(first, period.FullStartHour)
	if period.SameDay(first, app.StartDate) {
		start = app.StartDate
	}
	end := period.At(last, period.FullEndHour)
	if period.SameDay(last, app.EndDate) {
		end = app.EndDate
	}
	return start, end
}

// overlapValidator snapshots the employee's pending applications, approved
// schedules and the manager's blacklist windows, and returns a check usable
// for both a single period and every instance of a recurrence expansion.
func (s *service) overlapValidator(ctx context.Context, emp employee.Employee) (scheduling.ValidateFunc, error) {
	pending, err := s.applications.PendingPeriods(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	approved, err := s.schedules.ApprovedPeriods(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	var windows []period.Period
	if emp.ReportingManagerID != nil {
		windows, err = s.blacklists.WindowPeriods(ctx, *emp.ReportingManagerID)
		if err != nil {
			return nil, err
		}
	}

	categories := []struct {
		name    string
		periods []period.Period
	}{
		{scheduling.CategoryPending, pending},
		{scheduling.CategoryApproved, approved},
		{scheduling.CategoryBlacklist, windows},
	}

	return func(start, end time.Time) error {
		for _, c := range categories {
			conflict, err := scheduling.HasOverlap(start, end, c.periods, c.name)
			if err != nil {
				return err
			}
			if conflict {
				return &scheduling.OverlapError{Category: c.name}
			}
		}
		return nil
	}, nil
}

func (s *service) expandRecurrence(p period.Period, rec *application.RecurrenceRequest, validate scheduling.ValidateFunc, base *application.Application) ([]period.Period, error) {
	if rec == nil {
		return nil, nil
	}
	if rec.EndDate == "" {
		return nil, application.ErrRecurrenceNeedsEndDate
	}

	until, err := period.ParseDateTime(rec.EndDate)
	if err != nil {
		return nil, err
	}
	until = period.EndOfDay(until)

	rule := scheduling.RecurrenceRule{
		Unit:  scheduling.RecurrenceUnit(rec.Unit),
		Until: until,
	}

	instances, err := scheduling.ExpandRecurrence(p.Start, p.End, rule, validate)
	if err != nil {
		return nil, err
	}

	base.RecurrenceUnit = &rec.Unit
	base.RecurrenceEnd = &until

	return instances, nil
}

func (s *service) notifySubmitted(ctx context.Context, emp employee.Employee, p period.Period) {
	if emp.ReportingManagerID == nil {
		return
	}
	mgr, err := s.employees.GetByID(ctx, *emp.ReportingManagerID)
	if err != nil {
		slog.Warn("Submission email skipped", "error", err)
		return
	}

	err = s.emailService.SendApplicationSubmitted(
		mgr.Email, emp.FullName,
		p.Start.Format(dateFormat), p.End.Format(dateFormat),
	)
	if err != nil {
		slog.Warn("Submission email failed", "to", mgr.Email, "error", err)
	}
}

func (s *service) notifyDecided(owner employee.Employee, app application.Application) {
	remarks := ""
	if app.ApproverRemarks != nil {
		remarks = *app.ApproverRemarks
	}

	err := s.emailService.SendApplicationDecided(
		owner.Email, owner.FullName, string(app.Status), remarks,
		app.StartDate.Format(dateFormat), app.EndDate.Format(dateFormat),
	)
	if err != nil {
		slog.Warn("Decision email failed", "to", owner.Email, "error", err)
	}
}

func (s *service) isManagerOf(ctx context.Context, managerID, employeeID string) bool {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return false
	}
	return emp.ReportingManagerID != nil && *emp.ReportingManagerID == managerID
}
