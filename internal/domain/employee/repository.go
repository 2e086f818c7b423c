package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee row only. Cascading deletion of the
	// employee's attendance records and schedule entries is an explicit batch
	// orchestrated by the service inside one transaction.
	Delete(ctx context.Context, id string) error
}
