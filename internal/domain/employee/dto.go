package employee

import (
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be exactly 4 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be exactly 4 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VerifyPINRequest struct {
	EmployeeID string `json:"employee_id"`
	PIN        string `json:"pin"`
}

func (r *VerifyPINRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PIN       string `json:"pin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// KioskEmployee is one tile on the kiosk board: who the employee is, where
// they work today, and whether they currently have an open attendance record.
type KioskEmployee struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StoreName *string `json:"store_name"`
	ClockedIn bool    `json:"clocked_in"`
}
