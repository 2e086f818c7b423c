package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, name, short_name, start_time, end_time, color,
	clock_in_grace_before_minutes, clock_in_grace_after_minutes,
	clock_out_grace_before_minutes, clock_out_grace_after_minutes,
	created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID, &sh.Name, &sh.ShortName, &sh.StartTime, &sh.EndTime, &sh.Color,
		&sh.ClockInGraceBeforeMinutes, &sh.ClockInGraceAfterMinutes,
		&sh.ClockOutGraceBeforeMinutes, &sh.ClockOutGraceAfterMinutes,
		&sh.CreatedAt, &sh.UpdatedAt,
	)
	return sh, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	sh.ID = uuid.NewString()

	query := `
		INSERT INTO shifts (
			id, name, short_name, start_time, end_time, color,
			clock_in_grace_before_minutes, clock_in_grace_after_minutes,
			clock_out_grace_before_minutes, clock_out_grace_after_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sh.ID, sh.Name, sh.ShortName, sh.StartTime, sh.EndTime, sh.Color,
		sh.ClockInGraceBeforeMinutes, sh.ClockInGraceAfterMinutes,
		sh.ClockOutGraceBeforeMinutes, sh.ClockOutGraceAfterMinutes,
	).Scan(&sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return sh, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	sh, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return sh, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY start_time, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, short_name = $3, start_time = $4, end_time = $5, color = $6,
			clock_in_grace_before_minutes = $7, clock_in_grace_after_minutes = $8,
			clock_out_grace_before_minutes = $9, clock_out_grace_after_minutes = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		sh.ID, sh.Name, sh.ShortName, sh.StartTime, sh.EndTime, sh.Color,
		sh.ClockInGraceBeforeMinutes, sh.ClockInGraceAfterMinutes,
		sh.ClockOutGraceBeforeMinutes, sh.ClockOutGraceAfterMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
