package attendance

import (
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/geoloc"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
)

type ActionRequest struct {
	EmployeeID string `json:"employee_id"`
	PIN        string `json:"pin"`

	// Position is supplied by the transport layer: the kiosk resolves the
	// device position client-side and sends coordinates, or reports that it
	// could not.
	Position geoloc.Provider `json:"-"`
}

func (r *ActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be exactly 4 digits",
		})
	}

	if r.Position == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position provider is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActionResponse struct {
	Action       Action   `json:"action"`
	RecordID     string   `json:"record_id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     *string  `json:"clock_out"`
	LateHours    *float64 `json:"late_hours"`
	EarlyHours   *float64 `json:"early_leave_hours"`
}

type RecordResponse struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employee_id"`
	ClockIn         string   `json:"clock_in"`
	ClockOut        *string  `json:"clock_out"`
	LateHours       *float64 `json:"late_hours"`
	EarlyLeaveHours *float64 `json:"early_leave_hours"`
	ClockInEdited   bool     `json:"clock_in_edited"`
	ClockOutEdited  bool     `json:"clock_out_edited"`
	WorkedHours     *float64 `json:"worked_hours"`
}

type UpdateRecordRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in"`  // "2006-01-02 15:04:05"
	ClockOut *string `json:"clock_out"` // "2006-01-02 15:04:05", "" clears it
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.ClockIn == nil && r.ClockOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "at least one of clock_in or clock_out must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecordsRequest struct {
	EmployeeID string `json:"employee_id"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
}

func (r *ListRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be YYYY-MM-DD",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Activity is one line of the kiosk's recent activity feed.
type Activity struct {
	RecordID     string `json:"record_id"`
	EmployeeName string `json:"employee_name"`
	Type         Action `json:"type"`
	Time         string `json:"time"`
}
