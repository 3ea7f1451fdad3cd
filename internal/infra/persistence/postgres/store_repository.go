package postgres

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id int64) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// UpdateStoreSettings persists address, location label, hours and the
// optional coordinate. Selecting the columns explicitly makes a nil
// latitude/longitude write NULL instead of being skipped.
func (repo *storeRepository) UpdateStoreSettings(ctx context.Context, store *entity.Store) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Select("address", "location", "hours", "latitude", "longitude").
		Updates(fromStoreDomain(store))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// DeleteStore removes a store by its ID.
func (repo *storeRepository) DeleteStore(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// CountStores returns the total number of registered stores.
func (repo *storeRepository) CountStores(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// ListStoreSummaries retrieves all stores with their product counts.
func (repo *storeRepository) ListStoreSummaries(ctx context.Context) ([]repository.StoreSummary, error) {
	var summaries []repository.StoreSummary
	err := repo.db.WithContext(ctx).
		Table("stores").
		Select("stores.id, stores.name, stores.address, stores.revenue, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.store_id = stores.id").
		Group("stores.id, stores.name, stores.address, stores.revenue").
		Order("stores.name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store summaries")
	}

	return summaries, nil
}

// TotalRevenue returns the accumulated revenue across all stores.
func (repo *storeRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum store revenue")
	}

	return total, nil
}

// TopStoresByRevenue retrieves the highest-revenue stores, capped at limit.
func (repo *storeRepository) TopStoresByRevenue(ctx context.Context, limit int) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel
	err := repo.db.WithContext(ctx).
		Order("revenue DESC").
		Limit(limit).
		Find(&storeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top stores by revenue")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	return &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Location:  data.Location,
		Hours:     data.Hours,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Revenue:   data.Revenue,
		Customers: data.Customers,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Location:  data.Location,
		Hours:     data.Hours,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Revenue:   data.Revenue,
		Customers: data.Customers,
	}
}
