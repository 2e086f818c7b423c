package shift

import (
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`

	// Grace minutes default to 0 when absent; negative values are rejected.
	ClockInGraceBeforeMinutes  int `json:"clock_in_grace_before_minutes"`
	ClockInGraceAfterMinutes   int `json:"clock_in_grace_after_minutes"`
	ClockOutGraceBeforeMinutes int `json:"clock_out_grace_before_minutes"`
	ClockOutGraceAfterMinutes  int `json:"clock_out_grace_after_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	return validateShiftFields("", r.Name, r.ShortName, r.StartTime, r.EndTime,
		r.ClockInGraceBeforeMinutes, r.ClockInGraceAfterMinutes,
		r.ClockOutGraceBeforeMinutes, r.ClockOutGraceAfterMinutes, false)
}

type UpdateShiftRequest struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`

	ClockInGraceBeforeMinutes  int `json:"clock_in_grace_before_minutes"`
	ClockInGraceAfterMinutes   int `json:"clock_in_grace_after_minutes"`
	ClockOutGraceBeforeMinutes int `json:"clock_out_grace_before_minutes"`
	ClockOutGraceAfterMinutes  int `json:"clock_out_grace_after_minutes"`
}

func (r *UpdateShiftRequest) Validate() error {
	return validateShiftFields(r.ID, r.Name, r.ShortName, r.StartTime, r.EndTime,
		r.ClockInGraceBeforeMinutes, r.ClockInGraceAfterMinutes,
		r.ClockOutGraceBeforeMinutes, r.ClockOutGraceAfterMinutes, true)
}

func validateShiftFields(id, name, shortName, startTime, endTime string, graceInBefore, graceInAfter, graceOutBefore, graceOutAfter int, requireID bool) error {
	var errs validator.ValidationErrors

	if requireID && validator.IsEmpty(id) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(shortName) {
		errs = append(errs, validator.ValidationError{
			Field:   "short_name",
			Message: "short_name is required",
		})
	}

	if !validator.IsValidTimeOfDay(startTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a 24h HH:MM value",
		})
	}

	if !validator.IsValidTimeOfDay(endTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a 24h HH:MM value",
		})
	}

	graces := map[string]int{
		"clock_in_grace_before_minutes":  graceInBefore,
		"clock_in_grace_after_minutes":   graceInAfter,
		"clock_out_grace_before_minutes": graceOutBefore,
		"clock_out_grace_after_minutes":  graceOutAfter,
	}
	for field, minutes := range graces {
		if minutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "grace minutes must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`

	ClockInGraceBeforeMinutes  int `json:"clock_in_grace_before_minutes"`
	ClockInGraceAfterMinutes   int `json:"clock_in_grace_after_minutes"`
	ClockOutGraceBeforeMinutes int `json:"clock_out_grace_before_minutes"`
	ClockOutGraceAfterMinutes  int `json:"clock_out_grace_after_minutes"`
}
