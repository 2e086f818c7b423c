package schedule

import "time"

// Entry assigns an employee to a shift at a store for one calendar date.
// At most one entry exists per (employee, date); assignments are upserted,
// never duplicated.
type Entry struct {
	ID         string
	EmployeeID string
	Date       string // "2006-01-02", no time component
	ShiftID    string
	StoreID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
