package shift

import (
	"fmt"
	"time"
)

// Shift is a named daily work window. Start and end are local wall-clock
// "HH:MM" values with no date; the grace minutes widen when a clock action is
// permitted around each boundary without moving the boundary itself.
type Shift struct {
	ID        string
	Name      string
	ShortName string
	StartTime string // "15:04"
	EndTime   string // "15:04"
	Color     string

	ClockInGraceBeforeMinutes  int
	ClockInGraceAfterMinutes   int
	ClockOutGraceBeforeMinutes int
	ClockOutGraceAfterMinutes  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartOn anchors the shift start on the given day, in that day's location.
func (s Shift) StartOn(day time.Time) (time.Time, error) {
	return anchorTimeOfDay(s.StartTime, day)
}

// EndOn anchors the shift end on the given day, in that day's location.
func (s Shift) EndOn(day time.Time) (time.Time, error) {
	return anchorTimeOfDay(s.EndTime, day)
}

func anchorTimeOfDay(hhmm string, day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid shift time %q: %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
