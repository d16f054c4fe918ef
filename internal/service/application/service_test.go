package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/application"
	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/employee"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/clock"
	"github.com/flexidesk/wfh-backend-go/internal/service/scheduling"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- fakes ----------

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeApplicationRepo struct {
	apps   map[string]application.Application
	nextID int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (application.Application, error) {
	r.nextID++
	app.ID = uuid.NewString()
	r.apps[app.ID] = app
	return app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (application.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]application.Application, error) {
	var out []application.Application
	for _, app := range r.apps {
		if app.EmployeeID == employeeID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListPendingByManager(ctx context.Context, managerID string) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeApplicationRepo) PendingPeriods(ctx context.Context, employeeID string) ([]period.Period, error) {
	var out []period.Period
	for _, app := range r.apps {
		if app.EmployeeID == employeeID && app.Status == application.StatusPending {
			out = append(out, period.Period{Start: app.StartDate, End: app.EndDate})
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, req application.UpdateApplicationRequest) error {
	app, ok := r.apps[req.ID]
	if !ok {
		return application.ErrApplicationNotFound
	}
	if req.Status != nil {
		app.Status = application.Status(*req.Status)
	}
	if req.ApproverRemarks != nil {
		app.ApproverRemarks = req.ApproverRemarks
	}
	if req.WithdrawalRemarks != nil {
		app.WithdrawalRemarks = req.WithdrawalRemarks
	}
	if req.VerifyBy != nil {
		app.VerifyBy = req.VerifyBy
	}
	r.apps[req.ID] = app
	return nil
}

func (r *fakeApplicationRepo) RejectPendingBefore(ctx context.Context, cutoff time.Time, remark string) (int64, error) {
	var n int64
	for id, app := range r.apps {
		if app.Status == application.StatusPending && app.StartDate.Before(cutoff) {
			app.Status = application.StatusRejected
			app.ApproverRemarks = &remark
			r.apps[id] = app
			n++
		}
	}
	return n, nil
}

type fakeScheduleRepo struct {
	schedules map[string]schedule.Schedule
	nextID    int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]schedule.Schedule)}
}

func (r *fakeScheduleRepo) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	r.nextID++
	s.ID = fmt.Sprintf("sched-%d", r.nextID)
	r.schedules[s.ID] = s
	return s, nil
}

func (r *fakeScheduleRepo) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, s := range r.schedules {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) ApprovedPeriods(ctx context.Context, employeeID string) ([]period.Period, error) {
	var out []period.Period
	for _, s := range r.schedules {
		if s.EmployeeID == employeeID {
			out = append(out, period.Period{Start: s.StartDate, End: s.EndDate})
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) ListCovering(ctx context.Context, day time.Time) ([]schedule.Schedule, error) {
	return nil, nil
}

func (r *fakeScheduleRepo) DeleteMatching(ctx context.Context, employeeID string, start, end time.Time) error {
	for id, s := range r.schedules {
		if s.EmployeeID == employeeID && s.StartDate.Equal(start) && s.EndDate.Equal(end) {
			delete(r.schedules, id)
			return nil
		}
	}
	return schedule.ErrScheduleNotFound
}

func (r *fakeScheduleRepo) DeleteOrphans(ctx context.Context) (int64, error) { return 0, nil }

type fakeBlacklistRepo struct {
	blacklist.WindowRepository
	periods map[string][]period.Period
}

func (r *fakeBlacklistRepo) WindowPeriods(ctx context.Context, managerID string) ([]period.Period, error) {
	return r.periods[managerID], nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byUserID map[string]employee.Employee
	byID     map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{
		byUserID: make(map[string]employee.Employee),
		byID:     make(map[string]employee.Employee),
	}
	for _, e := range emps {
		if e.UserID != nil {
			r.byUserID[*e.UserID] = e
		}
		r.byID[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	e, ok := r.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeEmailService struct {
	submitted []string
	decided   []string
}

func (f *fakeEmailService) SendApplicationSubmitted(to, employeeName, startDate, endDate string) error {
	f.submitted = append(f.submitted, to)
	return nil
}

func (f *fakeEmailService) SendApplicationDecided(to, employeeName, status, remarks, startDate, endDate string) error {
	f.decided = append(f.decided, to)
	return nil
}

// ---------- fixture ----------

const (
	employeeUserID = "user-emp"
	managerUserID  = "user-mgr"
)

type fixture struct {
	svc        application.ApplicationService
	tx         *fakeTxRunner
	apps       *fakeApplicationRepo
	schedules  *fakeScheduleRepo
	blacklists *fakeBlacklistRepo
	emails     *fakeEmailService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	empUserID, mgrUserID := employeeUserID, managerUserID
	mgr := employee.Employee{
		ID:       "emp-mgr",
		UserID:   &mgrUserID,
		FullName: "Mara Lindqvist",
		Email:    "mara@flexidesk.test",
	}
	emp := employee.Employee{
		ID:                 "emp-1",
		UserID:             &empUserID,
		FullName:           "Oda Brekke",
		Email:              "oda@flexidesk.test",
		Department:         "Engineering",
		ReportingManagerID: &mgr.ID,
	}

	f := &fixture{
		tx:         &fakeTxRunner{},
		apps:       newFakeApplicationRepo(),
		schedules:  newFakeScheduleRepo(),
		blacklists: &fakeBlacklistRepo{periods: make(map[string][]period.Period)},
		emails:     &fakeEmailService{},
	}
	f.svc = NewService(
		f.tx, f.apps, f.schedules, f.blacklists,
		newFakeEmployeeRepo(emp, mgr), f.emails,
		clock.Fixed(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)),
	)
	return f
}

// ---------- tests ----------

func TestSubmit_CreatesPendingAndNotifiesManager(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:           employeeUserID,
		StartDate:        "2025-03-10",
		EndDate:          "2025-03-12",
		Type:             "regular",
		RequestorRemarks: "focus time",
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	assert.Equal(t, application.StatusPending, created[0].Status)
	assert.Equal(t, "emp-1", created[0].EmployeeID)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"mara@flexidesk.test"}, f.emails.submitted)
}

func TestSubmit_RejectsPastPeriod(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-02-10",
		EndDate:   "2025-02-11",
		Type:      "regular",
	})
	assert.ErrorIs(t, err, application.ErrPeriodInPast)
	assert.Empty(t, f.apps.apps)
}

func TestSubmit_RejectsOverlapWithApprovedSchedule(t *testing.T) {
	f := newFixture(t)
	f.schedules.Create(context.Background(), schedule.Schedule{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 11, 18, 0, 0, 0, time.UTC),
	})

	_, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-12",
		Type:      "regular",
	})

	var overlapErr *scheduling.OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, scheduling.CategoryApproved, overlapErr.Category)
	assert.Empty(t, f.apps.apps)
}

func TestSubmit_RejectsOverlapWithManagerBlacklist(t *testing.T) {
	f := newFixture(t)
	f.blacklists.periods["emp-mgr"] = []period.Period{{
		Start: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC),
	}}

	_, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-12",
		EndDate:   "2025-03-12",
		Type:      "regular",
	})

	var overlapErr *scheduling.OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, scheduling.CategoryBlacklist, overlapErr.Category)
}

func TestSubmit_WeeklyRecurrenceMaterializesSeries(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		Type:      "regular",
		Recurrence: &application.RecurrenceRequest{
			Unit:    "week",
			EndDate: "2025-03-31",
		},
	})
	require.NoError(t, err)

	// Base on the 10th plus instances on the 17th, 24th and 31st.
	require.Len(t, created, 4)
	assert.NotNil(t, created[0].RecurrenceUnit)
	for _, app := range created {
		assert.Equal(t, application.StatusPending, app.Status)
	}
	assert.Equal(t, 1, f.tx.calls)
}

func TestSubmit_RecurrenceConflictPersistsNothing(t *testing.T) {
	f := newFixture(t)
	// Third instance of the weekly series collides with this schedule.
	f.schedules.Create(context.Background(), schedule.Schedule{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 24, 23, 59, 59, 0, time.UTC),
	})

	_, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		Type:      "regular",
		Recurrence: &application.RecurrenceRequest{
			Unit:    "week",
			EndDate: "2025-03-31",
		},
	})

	var recErr *scheduling.RecurrenceError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC), recErr.Start)
	assert.Empty(t, f.apps.apps)
	assert.Zero(t, f.tx.calls)
}

func submitApproved(t *testing.T, f *fixture) application.Application {
	t.Helper()

	created, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-14",
		Type:      "regular",
	})
	require.NoError(t, err)

	app, err := f.svc.Approve(context.Background(), managerUserID, application.DecideApplicationRequest{
		ApplicationID:   created[0].ID,
		ApproverRemarks: "ok",
	})
	require.NoError(t, err)
	return app
}

func TestApprove_MaterializesSchedule(t *testing.T) {
	f := newFixture(t)

	app := submitApproved(t, f)

	assert.Equal(t, application.StatusApproved, app.Status)
	require.NotNil(t, app.VerifyBy)
	assert.Equal(t, "emp-mgr", *app.VerifyBy)

	schedules, err := f.schedules.ListByEmployee(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, app.StartDate, schedules[0].StartDate)
	assert.Equal(t, app.EndDate, schedules[0].EndDate)
	assert.Equal(t, []string{"oda@flexidesk.test"}, f.emails.decided)
}

func TestApprove_AlreadyDecided(t *testing.T) {
	f := newFixture(t)
	app := submitApproved(t, f)

	_, err := f.svc.Approve(context.Background(), managerUserID, application.DecideApplicationRequest{
		ApplicationID: app.ID,
	})
	assert.ErrorIs(t, err, application.ErrApplicationProcessed)
}

func TestApprove_WrongManager(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		Type:      "regular",
	})
	require.NoError(t, err)

	// Rebuild the service with a second manager unrelated to the employee.
	otherUserID := "user-other"
	mgrID := "emp-mgr"
	empUser, mgrUser := employeeUserID, managerUserID
	repo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", UserID: &empUser, Email: "oda@flexidesk.test", ReportingManagerID: &mgrID},
		employee.Employee{ID: "emp-mgr", UserID: &mgrUser, Email: "mara@flexidesk.test"},
		employee.Employee{ID: "emp-other", UserID: &otherUserID, Email: "other@flexidesk.test"},
	)
	svc := NewService(f.tx, f.apps, f.schedules, f.blacklists, repo, f.emails,
		clock.Fixed(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)))

	_, err = svc.Approve(context.Background(), otherUserID, application.DecideApplicationRequest{
		ApplicationID: created[0].ID,
	})
	assert.ErrorIs(t, err, employee.ErrNotReportingTo)
}

func TestReject_LeavesNoSchedule(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		Type:      "regular",
	})
	require.NoError(t, err)

	app, err := f.svc.Reject(context.Background(), managerUserID, application.DecideApplicationRequest{
		ApplicationID:   created[0].ID,
		ApproverRemarks: "all hands week",
	})
	require.NoError(t, err)

	assert.Equal(t, application.StatusRejected, app.Status)
	assert.Empty(t, f.schedules.schedules)
}

func TestRequestWithdrawal_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	app := submitApproved(t, f)

	err := f.svc.RequestWithdrawal(context.Background(), managerUserID, application.WithdrawRequest{
		ApplicationID:     app.ID,
		WithdrawalRemarks: "plans changed",
	})
	assert.ErrorIs(t, err, application.ErrNotOwner)

	err = f.svc.RequestWithdrawal(context.Background(), employeeUserID, application.WithdrawRequest{
		ApplicationID:     app.ID,
		WithdrawalRemarks: "plans changed",
	})
	require.NoError(t, err)

	stored, err := f.apps.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.WithdrawalRemarks)
	assert.Equal(t, "plans changed", *stored.WithdrawalRemarks)
	assert.Equal(t, application.StatusApproved, stored.Status)
}

func TestWithdraw_WholePeriod(t *testing.T) {
	f := newFixture(t)
	app := submitApproved(t, f)

	replacements, err := f.svc.Withdraw(context.Background(), managerUserID, application.WithdrawRequest{
		ApplicationID:     app.ID,
		WithdrawalRemarks: "project moved on-site",
	})
	require.NoError(t, err)
	assert.Empty(t, replacements)

	stored, err := f.apps.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusWithdrawn, stored.Status)
	assert.Empty(t, f.schedules.schedules)
}

func TestWithdraw_PartialSplitsIntoRuns(t *testing.T) {
	f := newFixture(t)
	app := submitApproved(t, f) // Mon Mar 10 .. Fri Mar 14

	replacements, err := f.svc.Withdraw(context.Background(), managerUserID, application.WithdrawRequest{
		ApplicationID:     app.ID,
		WithdrawalRemarks: "midweek workshop",
		Dates:             []string{"2025-03-12"},
	})
	require.NoError(t, err)
	require.Len(t, replacements, 2)

	assert.Equal(t, app.StartDate, replacements[0].StartDate)
	assert.Equal(t, time.Date(2025, 3, 11, 18, 0, 0, 0, time.UTC), replacements[0].EndDate)
	assert.Equal(t, time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC), replacements[1].StartDate)
	assert.Equal(t, app.EndDate, replacements[1].EndDate)

	for _, rep := range replacements {
		assert.Equal(t, application.StatusApproved, rep.Status)
	}

	stored, err := f.apps.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusWithdrawn, stored.Status)

	// One schedule per surviving run, the original one gone.
	schedules, err := f.schedules.ListByEmployee(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Len(t, schedules, 2)
}

func TestWithdraw_DatesOutsidePeriod(t *testing.T) {
	f := newFixture(t)
	app := submitApproved(t, f)

	_, err := f.svc.Withdraw(context.Background(), managerUserID, application.WithdrawRequest{
		ApplicationID: app.ID,
		Dates:         []string{"2025-03-20"},
	})
	assert.ErrorIs(t, err, application.ErrWithdrawnDatesOutside)

	stored, err := f.apps.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusApproved, stored.Status)
}

func TestWithdraw_NotApproved(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Submit(context.Background(), application.CreateApplicationRequest{
		UserID:    employeeUserID,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		Type:      "regular",
	})
	require.NoError(t, err)

	_, err = f.svc.Withdraw(context.Background(), managerUserID, application.WithdrawRequest{
		ApplicationID: created[0].ID,
	})
	assert.ErrorIs(t, err, application.ErrNotApproved)
}
