package master

import (
	"context"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
)

// MasterService manages the admin-maintained reference data: store locations
// and shift definitions.
type MasterService interface {
	CreateStore(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error)
	GetStore(ctx context.Context, id string) (store.StoreResponse, error)
	ListStores(ctx context.Context) ([]store.StoreResponse, error)
	UpdateStore(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error)
	DeleteStore(ctx context.Context, id string) error

	CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	GetShift(ctx context.Context, id string) (shift.ShiftResponse, error)
	ListShifts(ctx context.Context) ([]shift.ShiftResponse, error)
	UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error)

	// DeleteShift removes the shift together with every schedule entry that
	// references it, in one transaction.
	DeleteShift(ctx context.Context, id string) error
}
