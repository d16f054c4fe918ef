package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type blacklistRepositoryImpl struct {
	db *database.DB
}

func NewBlacklistRepository(db *database.DB) blacklist.WindowRepository {
	return &blacklistRepositoryImpl{db: db}
}

func (r *blacklistRepositoryImpl) Create(ctx context.Context, w blacklist.Window) (blacklist.Window, error) {
	q := GetQuerier(ctx, r.db)

	w.ID = uuid.NewString()

	query := `
		INSERT INTO blacklist_windows (id, created_by, start_date, end_date, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, w.ID, w.CreatedBy, w.StartDate, w.EndDate, w.Remarks).
		Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return blacklist.Window{}, err
	}

	return w, nil
}

func (r *blacklistRepositoryImpl) GetByID(ctx context.Context, id string) (blacklist.Window, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, created_by, start_date, end_date, remarks, created_at, updated_at
		FROM blacklist_windows
		WHERE id = $1
	`
	w, err := scanWindow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blacklist.Window{}, blacklist.ErrWindowNotFound
		}
		return blacklist.Window{}, err
	}

	return w, nil
}

func (r *blacklistRepositoryImpl) ListByManager(ctx context.Context, managerID string, from, to *time.Time) ([]blacklist.Window, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, created_by, start_date, end_date, remarks, created_at, updated_at
		FROM blacklist_windows
		WHERE created_by = $1
		  AND ($2::timestamptz IS NULL OR end_date >= $2)
		  AND ($3::timestamptz IS NULL OR start_date <= $3)
		ORDER BY start_date
	`
	rows, err := q.Query(ctx, query, managerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []blacklist.Window
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return windows, rows.Err()
}

func (r *blacklistRepositoryImpl) WindowPeriods(ctx context.Context, managerID string) ([]period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT start_date, end_date
		FROM blacklist_windows
		WHERE created_by = $1
	`
	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPeriods(rows)
}

func (r *blacklistRepositoryImpl) Update(ctx context.Context, w blacklist.Window) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE blacklist_windows
		SET start_date = $2, end_date = $3, remarks = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, w.ID, w.StartDate, w.EndDate, w.Remarks)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blacklist.ErrWindowNotFound
	}

	return nil
}

func (r *blacklistRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM blacklist_windows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blacklist.ErrWindowNotFound
	}

	return nil
}

func (r *blacklistRepositoryImpl) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM blacklist_windows WHERE end_date < $1`, cutoff)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func scanWindow(row pgx.Row) (blacklist.Window, error) {
	var w blacklist.Window
	err := row.Scan(
		&w.ID,
		&w.CreatedBy,
		&w.StartDate,
		&w.EndDate,
		&w.Remarks,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}
