package attendance

import (
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
)

// actionWindow computes the permitted interval for a clock action on the
// given day, together with the raw shift boundary the action is measured
// against. The grace minutes widen the interval on each side; the boundary
// itself never moves.
func actionWindow(sh shift.Shift, action attendance.Action, day time.Time) (from, to, boundary time.Time, err error) {
	switch action {
	case attendance.ActionClockOut:
		boundary, err = sh.EndOn(day)
		if err != nil {
			return time.Time{}, time.Time{}, time.Time{}, err
		}
		from = boundary.Add(-time.Duration(sh.ClockOutGraceBeforeMinutes) * time.Minute)
		to = boundary.Add(time.Duration(sh.ClockOutGraceAfterMinutes) * time.Minute)
	default:
		boundary, err = sh.StartOn(day)
		if err != nil {
			return time.Time{}, time.Time{}, time.Time{}, err
		}
		from = boundary.Add(-time.Duration(sh.ClockInGraceBeforeMinutes) * time.Minute)
		to = boundary.Add(time.Duration(sh.ClockInGraceAfterMinutes) * time.Minute)
	}

	return from, to, boundary, nil
}

// inWindow reports whether t falls inside [from, to]. Both bounds are
// inclusive; acting exactly at a bound is permitted.
func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// positiveHours converts a deviation to fractional hours, or nil when the
// deviation did not occur. A non-positive duration yields nil, never 0.
func positiveHours(d time.Duration) *float64 {
	if d <= 0 {
		return nil
	}
	h := d.Hours()
	return &h
}
