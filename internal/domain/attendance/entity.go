package attendance

import "time"

// Record is one attendance session. ClockOut is unset while the session is
// open; at most one open record exists per employee at any time.
//
// LateHours and EarlyLeaveHours are nil when the deviation did not occur.
// Absent is not the same as zero and must never be folded into 0 by readers.
type Record struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time

	LateHours       *float64
	EarlyLeaveHours *float64

	// Set when an admin corrects the raw instants after the fact.
	ClockInEdited  bool
	ClockOutEdited bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the record is still waiting for a clock-out.
func (r Record) Open() bool {
	return r.ClockOut == nil
}

// Action is the kind of clock attempt being validated.
type Action string

const (
	ActionClockIn  Action = "clock-in"
	ActionClockOut Action = "clock-out"
)
