package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/application"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

func (r *applicationRepositoryImpl) Create(ctx context.Context, app application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	app.ID = uuid.NewString()

	query := `
		INSERT INTO wfh_applications (
			id, employee_id, start_date, end_date, type, status,
			requestor_remarks, approver_remarks, withdrawal_remarks,
			verify_by, verify_timestamp, recurrence_unit, recurrence_end,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		app.ID, app.EmployeeID, app.StartDate, app.EndDate, app.Type, app.Status,
		app.RequestorRemarks, app.ApproverRemarks, app.WithdrawalRemarks,
		app.VerifyBy, app.VerifyTimestamp, app.RecurrenceUnit, app.RecurrenceEnd,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return application.Application{}, err
	}

	return app, nil
}

func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.start_date, a.end_date, a.type, a.status,
			   a.requestor_remarks, a.approver_remarks, a.withdrawal_remarks,
			   a.verify_by, a.verify_timestamp, a.recurrence_unit, a.recurrence_end,
			   a.created_at, a.updated_at, e.full_name
		FROM wfh_applications a
		INNER JOIN employees e ON a.employee_id = e.id
		WHERE a.id = $1
	`
	app, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, err
	}

	return app, nil
}

func (r *applicationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.start_date, a.end_date, a.type, a.status,
			   a.requestor_remarks, a.approver_remarks, a.withdrawal_remarks,
			   a.verify_by, a.verify_timestamp, a.recurrence_unit, a.recurrence_end,
			   a.created_at, a.updated_at, e.full_name
		FROM wfh_applications a
		INNER JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = $1
		ORDER BY a.start_date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *applicationRepositoryImpl) ListPendingByManager(ctx context.Context, managerID string) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.start_date, a.end_date, a.type, a.status,
			   a.requestor_remarks, a.approver_remarks, a.withdrawal_remarks,
			   a.verify_by, a.verify_timestamp, a.recurrence_unit, a.recurrence_end,
			   a.created_at, a.updated_at, e.full_name
		FROM wfh_applications a
		INNER JOIN employees e ON a.employee_id = e.id
		WHERE e.reporting_manager_id = $1 AND a.status = $2
		ORDER BY a.start_date ASC
	`
	rows, err := q.Query(ctx, query, managerID, application.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *applicationRepositoryImpl) PendingPeriods(ctx context.Context, employeeID string) ([]period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT start_date, end_date
		FROM wfh_applications
		WHERE employee_id = $1 AND status = $2
	`
	rows, err := q.Query(ctx, query, employeeID, application.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPeriods(rows)
}

func (r *applicationRepositoryImpl) Update(ctx context.Context, req application.UpdateApplicationRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_applications
		SET status = COALESCE($2, status),
			approver_remarks = COALESCE($3, approver_remarks),
			withdrawal_remarks = COALESCE($4, withdrawal_remarks),
			verify_by = COALESCE($5, verify_by),
			verify_timestamp = CASE WHEN $5::text IS NULL THEN verify_timestamp ELSE NOW() END,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.ApproverRemarks, req.WithdrawalRemarks, req.VerifyBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return application.ErrApplicationNotFound
	}

	return nil
}

func (r *applicationRepositoryImpl) RejectPendingBefore(ctx context.Context, cutoff time.Time, remark string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_applications
		SET status = $1, approver_remarks = $2, updated_at = NOW()
		WHERE status = $3 AND start_date < $4
	`
	tag, err := q.Exec(ctx, query, application.StatusRejected, remark, application.StatusPending, cutoff)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var app application.Application
	err := row.Scan(
		&app.ID,
		&app.EmployeeID,
		&app.StartDate,
		&app.EndDate,
		&app.Type,
		&app.Status,
		&app.RequestorRemarks,
		&app.ApproverRemarks,
		&app.WithdrawalRemarks,
		&app.VerifyBy,
		&app.VerifyTimestamp,
		&app.RecurrenceUnit,
		&app.RecurrenceEnd,
		&app.CreatedAt,
		&app.UpdatedAt,
		&app.EmployeeName,
	)
	return app, err
}

func collectApplications(rows pgx.Rows) ([]application.Application, error) {
	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func collectPeriods(rows pgx.Rows) ([]period.Period, error) {
	var periods []period.Period
	for rows.Next() {
		var p period.Period
		if err := rows.Scan(&p.Start, &p.End); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
