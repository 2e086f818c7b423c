package report

import (
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
)

type MonthRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeMonthRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *EmployeeMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	month := MonthRequest{Year: r.Year, Month: r.Month}
	if err := month.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Summary is one employee's payroll-facing totals for a month. Counts only
// include records where the deviation actually occurred; an absent deviation
// never contributes as zero.
type Summary struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`

	TotalHours         float64 `json:"total_hours"`
	TotalLateHours     float64 `json:"total_late_hours"`
	LateCount          int     `json:"late_count"`
	EarlyLeaveCount    int     `json:"early_leave_count"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	OvertimeCount      int     `json:"overtime_count"`
}

// DayStatus classifies one calendar day of the detail report, in priority
// order: attendance beats weekend beats a scheduled-but-absent day.
type DayStatus string

const (
	StatusHasAttendance      DayStatus = "has_attendance"
	StatusWeekendNoShift     DayStatus = "weekend_no_shift"
	StatusAbsentWithShift    DayStatus = "absent_with_shift"
	StatusNoScheduleAssigned DayStatus = "no_schedule_assigned"
)

// DayDetail is one row of the per-day monthly report. Hour quantities are
// pre-formatted with 2 decimals; "-" marks a value that does not apply.
type DayDetail struct {
	Date            string    `json:"date"`
	Weekday         string    `json:"weekday"`
	ShiftShortName  string    `json:"shift_short_name"`
	ClockIn         string    `json:"clock_in"`
	ClockOut        string    `json:"clock_out"`
	LateHours       string    `json:"late_hours"`
	EarlyLeaveHours string    `json:"early_leave_hours"`
	WorkedHours     string    `json:"worked_hours"`
	Status          DayStatus `json:"status"`
}

type MonthlyReport struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Employees []Summary `json:"employees"`
}

type EmployeeDetailReport struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	Days         []DayDetail `json:"days"`
}
