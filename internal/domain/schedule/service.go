package schedule

import "context"

type ScheduleService interface {
	// Upsert assigns (or with shift_id "none" clears) an employee's shift and
	// store for one calendar date.
	Upsert(ctx context.Context, req UpsertEntryRequest) (*EntryResponse, error)

	ListForEmployee(ctx context.Context, req ListEntriesRequest) ([]EntryResponse, error)
	ListForDate(ctx context.Context, date string) ([]EntryResponse, error)

	// WeekPreview builds the kiosk's Monday-to-Sunday schedule preview for
	// the week containing today.
	WeekPreview(ctx context.Context, employeeID string) ([]WeekDay, error)
}
