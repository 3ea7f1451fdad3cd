package usecase

import (
	"context"

	"nearbuy/internal/domain/entity"
)

// StoreData bundles a store profile with its inventory.
type StoreData struct {
	Store     *entity.Store     `json:"store"`
	Inventory []*entity.Product `json:"inventory"`
}

// StoreSettingsInput carries a store settings update. Latitude and
// longitude are optional; nil clears the stored coordinate.
type StoreSettingsInput struct {
	Address   string
	Location  string
	Hours     string
	Latitude  *float64
	Longitude *float64
}

// ProductInput carries product attributes for create/update operations.
type ProductInput struct {
	Name     string
	SKU      string
	Price    float64
	Category string
	Stock    int
	Supplier string
}

// StoreUsecase covers the store-owner surface: profile, settings and
// inventory management. Every mutation verifies store ownership.
type StoreUsecase interface {
	// GetStoreData retrieves the store profile and its inventory sorted by name.
	GetStoreData(ctx context.Context, storeID int64) (*StoreData, error)

	// UpdateStoreSettings updates address, location label, hours and coordinate.
	UpdateStoreSettings(ctx context.Context, storeID int64, input *StoreSettingsInput) (*entity.Store, error)

	// AddProduct creates a product under the store.
	AddProduct(ctx context.Context, storeID int64, input *ProductInput) (*entity.Product, error)

	// EditProduct updates a product the store owns.
	EditProduct(ctx context.Context, storeID, productID int64, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product the store owns, along with any
	// favorites referencing it.
	DeleteProduct(ctx context.Context, storeID, productID int64) error
}
