package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error

	// GetOpenRecord returns the employee's record with no clock-out, or nil
	// when none exists. The store guarantees at most one such record; callers
	// serialize clock actions per employee.
	GetOpenRecord(ctx context.Context, employeeID string) (*Record, error)

	// ListOpen returns every open record across all employees.
	ListOpen(ctx context.Context) ([]Record, error)

	// ListByEmployeeBetween returns records with clockIn in [from, to).
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// ListRecent returns the most recently touched records, newest first.
	ListRecent(ctx context.Context, limit int) ([]Record, error)

	DeleteByEmployee(ctx context.Context, employeeID string) error
}
