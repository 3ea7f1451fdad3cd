package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/errors"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreSummary is one row of the admin store overview.
type StoreSummary struct {
	ID           int64
	Name         string
	Address      string
	ProductCount int64
	Revenue      float64
}

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id int64) (*entity.Store, error)

	// UpdateStoreSettings persists address, location label, hours and the
	// optional coordinate. A nil latitude/longitude clears the coordinate.
	UpdateStoreSettings(ctx context.Context, store *entity.Store) error

	// DeleteStore removes a store by its ID.
	DeleteStore(ctx context.Context, id int64) error

	// CountStores returns the total number of registered stores.
	CountStores(ctx context.Context) (int64, error)

	// ListStoreSummaries retrieves all stores with their product counts,
	// ordered by name.
	ListStoreSummaries(ctx context.Context) ([]StoreSummary, error)

	// TotalRevenue returns the accumulated revenue across all stores.
	TotalRevenue(ctx context.Context) (float64, error)

	// TopStoresByRevenue retrieves the highest-revenue stores, capped at limit.
	TopStoresByRevenue(ctx context.Context, limit int) ([]*entity.Store, error)
}
