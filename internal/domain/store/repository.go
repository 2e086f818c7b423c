package store

import "context"

type StoreRepository interface {
	Create(ctx context.Context, st StoreLocation) (StoreLocation, error)
	GetByID(ctx context.Context, id string) (StoreLocation, error)
	List(ctx context.Context) ([]StoreLocation, error)
	Update(ctx context.Context, st StoreLocation) error
	Delete(ctx context.Context, id string) error
}
