package schedule

import "context"

type ScheduleRepository interface {
	// Upsert inserts or replaces the single entry for (employeeID, date).
	Upsert(ctx context.Context, entry Entry) (Entry, error)

	// GetByEmployeeAndDate returns nil when no entry exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Entry, error)

	ListByEmployeeBetween(ctx context.Context, employeeID, fromDate, toDate string) ([]Entry, error)
	ListByDate(ctx context.Context, date string) ([]Entry, error)

	Delete(ctx context.Context, employeeID, date string) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
	DeleteByShift(ctx context.Context, shiftID string) error
}
