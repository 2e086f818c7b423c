package response

import (
	"errors"
	"net/http"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/auth"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Clock action rules carry their parameters in the error itself.
	var windowErr *attendance.OutsideWindowError
	if errors.As(err, &windowErr) {
		UnprocessableAction(w, "OUTSIDE_WINDOW", windowErr.Error())
		return
	}
	var geofenceErr *attendance.OutsideGeofenceError
	if errors.As(err, &geofenceErr) {
		UnprocessableAction(w, "OUTSIDE_GEOFENCE", geofenceErr.Error())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPINMismatch):
		Unauthorized(w, "Incorrect PIN")
	case errors.Is(err, employee.ErrInvalidPIN):
		BadRequest(w, err.Error(), nil)

	// Master data
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Clock actions
	case errors.Is(err, attendance.ErrNoScheduleToday):
		UnprocessableAction(w, "NO_SCHEDULE", "No shift scheduled for today")
	case errors.Is(err, attendance.ErrStoreLocationMissing):
		UnprocessableAction(w, "STORE_LOCATION_MISSING", "The assigned store has no location configured")
	case errors.Is(err, attendance.ErrLocationUnavailable):
		UnprocessableAction(w, "LOCATION_UNAVAILABLE", "Could not determine your current position")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance record to close")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
