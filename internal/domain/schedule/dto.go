package schedule

import (
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
)

// NoShift is the shift_id value meaning "clear this day's assignment".
const NoShift = "none"

type UpsertEntryRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ShiftID    string `json:"shift_id"`
	StoreID    string `json:"store_id"`
}

func (r *UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if r.ShiftID != NoShift && validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEntriesRequest struct {
	EmployeeID string `json:"employee_id"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
}

func (r *ListEntriesRequest) Validate() error {
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

type EntryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ShiftID    string `json:"shift_id"`
	StoreID    string `json:"store_id"`
}

// WeekDay is one row of the kiosk's weekly schedule preview.
type WeekDay struct {
	Date           string  `json:"date"`
	Weekday        string  `json:"weekday"`
	IsToday        bool    `json:"is_today"`
	ShiftShortName *string `json:"shift_short_name"`
	StoreName      *string `json:"store_name"`
}
