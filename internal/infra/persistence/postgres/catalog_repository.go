// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// searchEntryRow is the scan target for the product-store join.
type searchEntryRow struct {
	ID        int64
	Name      string
	SKU       string
	Price     float64
	Category  *string
	Stock     int
	Supplier  string
	StoreID   int64
	StoreName string
	Address   string
	Hours     string
	Latitude  *float64
	Longitude *float64
}

const joinedProductColumns = "products.id, products.name, products.sku, products.price, " +
	"products.category, products.stock, products.supplier, " +
	"stores.id AS store_id, stores.name AS store_name, stores.address, stores.hours, " +
	"stores.latitude, stores.longitude"

// FindJoinedProducts retrieves every product joined with its owning store.
func (repo *catalogRepository) FindJoinedProducts(ctx context.Context) ([]*entity.SearchEntry, error) {
	var rows []searchEntryRow
	err := repo.db.WithContext(ctx).
		Table("products").
		Select(joinedProductColumns).
		Joins("JOIN stores ON stores.id = products.store_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch joined products")
	}

	return toSearchEntryDomains(rows), nil
}

// FindFavoriteJoinedProducts retrieves the store-joined products the given
// user has favorited.
func (repo *catalogRepository) FindFavoriteJoinedProducts(ctx context.Context, userID int64) ([]*entity.SearchEntry, error) {
	var rows []searchEntryRow
	err := repo.db.WithContext(ctx).
		Table("products").
		Select(joinedProductColumns).
		Joins("JOIN stores ON stores.id = products.store_id").
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch favorite joined products")
	}

	return toSearchEntryDomains(rows), nil
}

func toSearchEntryDomains(rows []searchEntryRow) []*entity.SearchEntry {
	entries := make([]*entity.SearchEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toSearchEntryDomain(&rows[i]))
	}

	return entries
}

func toSearchEntryDomain(row *searchEntryRow) *entity.SearchEntry {
	category := entity.UncategorizedCategory
	if row.Category != nil {
		category = *row.Category
	}

	return &entity.SearchEntry{
		ID:        row.ID,
		Name:      row.Name,
		SKU:       row.SKU,
		Price:     row.Price,
		Category:  category,
		Stock:     row.Stock,
		Supplier:  row.Supplier,
		StoreID:   row.StoreID,
		Store:     row.StoreName,
		Address:   row.Address,
		Hours:     row.Hours,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
	}
}
