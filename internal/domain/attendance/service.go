package attendance

import "context"

type AttendanceService interface {
	// RecordAction is the single clock entry point. It derives the correct
	// action (clock-in vs clock-out) from the authoritative open-record
	// state, validates the attempt against today's schedule, shift window and
	// store geofence, and opens or closes the attendance record.
	RecordAction(ctx context.Context, req ActionRequest) (ActionResponse, error)

	List(ctx context.Context, req ListRecordsRequest) ([]RecordResponse, error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	Update(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error

	// RecentActivity lists the latest clock events for the kiosk feed.
	RecentActivity(ctx context.Context, limit int) ([]Activity, error)
}
