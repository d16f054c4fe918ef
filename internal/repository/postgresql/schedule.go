package postgresql

import (
	"context"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

func (r *scheduleRepositoryImpl) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	s.ID = uuid.NewString()

	query := `
		INSERT INTO wfh_schedules (id, employee_id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query, s.ID, s.EmployeeID, s.StartDate, s.EndDate).Scan(&s.CreatedAt)
	if err != nil {
		return schedule.Schedule{}, err
	}

	return s, nil
}

func (r *scheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, created_at
		FROM wfh_schedules
		WHERE employee_id = $1
		ORDER BY start_date
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func (r *scheduleRepositoryImpl) ApprovedPeriods(ctx context.Context, employeeID string) ([]period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT start_date, end_date
		FROM wfh_schedules
		WHERE employee_id = $1
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPeriods(rows)
}

// ListCovering fetches every schedule touching the given calendar day in
// one query, so aggregation never issues per-employee reads.
func (r *scheduleRepositoryImpl) ListCovering(ctx context.Context, day time.Time) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT id, employee_id, start_date, end_date, created_at
		FROM wfh_schedules
		WHERE start_date < $2 AND end_date >= $1
	`
	rows, err := q.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func (r *scheduleRepositoryImpl) DeleteMatching(ctx context.Context, employeeID string, start, end time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM wfh_schedules
		WHERE employee_id = $1 AND start_date = $2 AND end_date = $3
	`
	tag, err := q.Exec(ctx, query, employeeID, start, end)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

func (r *scheduleRepositoryImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM wfh_schedules s
		WHERE NOT EXISTS (
			SELECT 1 FROM wfh_applications a
			WHERE a.employee_id = s.employee_id
			  AND a.start_date = s.start_date
			  AND a.end_date = s.end_date
			  AND a.status = 'approved'
		)
	`
	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func collectSchedules(rows pgx.Rows) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	for rows.Next() {
		var s schedule.Schedule
		err := rows.Scan(&s.ID, &s.EmployeeID, &s.StartDate, &s.EndDate, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}
