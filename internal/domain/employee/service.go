package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes the employee together with all of their attendance
	// records and schedule entries in a single batch.
	Delete(ctx context.Context, id string) error

	// KioskBoard lists every employee with today's store assignment and
	// current clocked-in status.
	KioskBoard(ctx context.Context) ([]KioskEmployee, error)

	// VerifyPIN checks the entered PIN against the employee's stored PIN.
	VerifyPIN(ctx context.Context, req VerifyPINRequest) error
}
