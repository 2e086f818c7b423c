package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `
	id, employee_id, to_char(date, 'YYYY-MM-DD'), shift_id, store_id, created_at, updated_at
`

func scanEntry(row pgx.Row) (schedule.Entry, error) {
	var e schedule.Entry
	err := row.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.ShiftID, &e.StoreID, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// Upsert implements schedule.ScheduleRepository. The (employee_id, date) pair
// is unique, so re-assigning a day replaces the existing entry in place.
func (r *scheduleRepository) Upsert(ctx context.Context, entry schedule.Entry) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	entry.ID = uuid.NewString()

	query := `
		INSERT INTO schedule_entries (id, employee_id, date, shift_id, store_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET shift_id = EXCLUDED.shift_id, store_id = EXCLUDED.store_id, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.Date, entry.ShiftID, entry.StoreID,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to upsert schedule entry: %w", err)
	}

	return entry, nil
}

// GetByEmployeeAndDate implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries WHERE employee_id = $1 AND date = $2`

	entry, err := scanEntry(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule entry: %w", err)
	}

	return &entry, nil
}

// ListByEmployeeBetween implements schedule.ScheduleRepository. The date range
// is inclusive on both ends.
func (r *scheduleRepository) ListByEmployeeBetween(ctx context.Context, employeeID, fromDate, toDate string) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedule_entries
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListByDate implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByDate(ctx context.Context, date string) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries WHERE date = $1 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]schedule.Entry, error) {
	var entries []schedule.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepository) Delete(ctx context.Context, employeeID, date string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE employee_id = $1 AND date = $2`, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

// DeleteByEmployee implements schedule.ScheduleRepository. Deleting nothing is
// not an error; the employee may simply have no assignments.
func (r *scheduleRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete schedule entries: %w", err)
	}

	return nil
}

// DeleteByShift implements schedule.ScheduleRepository.
func (r *scheduleRepository) DeleteByShift(ctx context.Context, shiftID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE shift_id = $1`, shiftID); err != nil {
		return fmt.Errorf("failed to delete schedule entries: %w", err)
	}

	return nil
}
