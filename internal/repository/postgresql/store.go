package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type storeRepository struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepository{db: db}
}

// Create implements store.StoreRepository.
func (r *storeRepository) Create(ctx context.Context, st store.StoreLocation) (store.StoreLocation, error) {
	q := GetQuerier(ctx, r.db)

	st.ID = uuid.NewString()

	query := `
		INSERT INTO stores (id, name, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, st.ID, st.Name, st.Latitude, st.Longitude).Scan(&st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return store.StoreLocation{}, fmt.Errorf("failed to create store: %w", err)
	}

	return st, nil
}

// GetByID implements store.StoreRepository.
func (r *storeRepository) GetByID(ctx context.Context, id string) (store.StoreLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	var st store.StoreLocation
	err := q.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.Latitude, &st.Longitude, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.StoreLocation{}, store.ErrStoreNotFound
		}
		return store.StoreLocation{}, fmt.Errorf("failed to get store: %w", err)
	}

	return st, nil
}

// List implements store.StoreRepository.
func (r *storeRepository) List(ctx context.Context) ([]store.StoreLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM stores
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.StoreLocation
	for rows.Next() {
		var st store.StoreLocation
		if err := rows.Scan(&st.ID, &st.Name, &st.Latitude, &st.Longitude, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, st)
	}

	return stores, rows.Err()
}

// Update implements store.StoreRepository.
func (r *storeRepository) Update(ctx context.Context, st store.StoreLocation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores
		SET name = $2, latitude = $3, longitude = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, st.ID, st.Name, st.Latitude, st.Longitude)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}

// Delete implements store.StoreRepository.
func (r *storeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}
