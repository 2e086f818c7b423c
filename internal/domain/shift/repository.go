package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, sh Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, sh Shift) error

	// Delete removes the shift row only; removal of schedule entries that
	// reference it is batched by the service in the same transaction.
	Delete(ctx context.Context, id string) error
}
