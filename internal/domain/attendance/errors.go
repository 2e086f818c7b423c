package attendance

import (
	"errors"
	"fmt"
	"time"
)

// Clock action failures. Every one rejects a single attempt; none is fatal
// and none is retried by the engine itself.
var (
	ErrNoScheduleToday      = errors.New("no schedule assigned for today")
	ErrStoreLocationMissing = errors.New("assigned store has no location")
	ErrLocationUnavailable  = errors.New("could not determine current position")
	ErrAlreadyClockedIn     = errors.New("an attendance record is already open")
	ErrNotClockedIn         = errors.New("no open attendance record to close")

	ErrRecordNotFound = errors.New("attendance record not found")
)

// OutsideWindowError rejects a clock action attempted outside the grace
// window around the relevant shift boundary. It carries the computed bounds
// for the user-facing message.
type OutsideWindowError struct {
	Action Action
	From   time.Time
	To     time.Time
}

func (e *OutsideWindowError) Error() string {
	return fmt.Sprintf("%s only permitted between %s and %s",
		e.Action, e.From.Format("15:04"), e.To.Format("15:04"))
}

// OutsideGeofenceError rejects a clock action attempted outside the store's
// permitted radius. Distance is rounded to the nearest meter for display.
type OutsideGeofenceError struct {
	DistanceMeters int
}

func (e *OutsideGeofenceError) Error() string {
	return fmt.Sprintf("outside the store's permitted area (%dm away)", e.DistanceMeters)
}
