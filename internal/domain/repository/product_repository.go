package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// CategoryCount is one row of the per-category product breakdown.
type CategoryCount struct {
	Category string
	Count    int64
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product under its owning store.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindProductsByStore retrieves a store's inventory ordered by name.
	FindProductsByStore(ctx context.Context, storeID int64) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id int64) error

	// DeleteProductsByStore removes every product owned by a store.
	DeleteProductsByStore(ctx context.Context, storeID int64) error

	// CountProducts returns the total number of products in the catalog.
	CountProducts(ctx context.Context) (int64, error)

	// CountProductsByCategory returns the per-category product breakdown.
	// Products stored without a category are reported under "Uncategorized".
	CountProductsByCategory(ctx context.Context) ([]CategoryCount, error)
}
