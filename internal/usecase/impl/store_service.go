package impl

import (
	"context"
	"strings"

	"nearbuy/internal/domain/entity"
	domainerrors "nearbuy/internal/domain/errors"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/geo"
	"nearbuy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storeService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	TxManager   repository.TransactionManager
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		txManager:   params.TxManager,
	}
}

func (s *storeService) GetStoreData(ctx context.Context, storeID int64) (*usecase.StoreData, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	inventory, err := s.productRepo.FindProductsByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch store inventory")
	}

	return &usecase.StoreData{
		Store:     store,
		Inventory: inventory,
	}, nil
}

// UpdateStoreSettings applies the settings update. A coordinate is stored
// only when both latitude and longitude are present and in range;
// otherwise the stored coordinate is cleared.
func (s *storeService) UpdateStoreSettings(ctx context.Context, storeID int64, input *usecase.StoreSettingsInput) (*entity.Store, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	store.Address = input.Address
	store.Location = input.Location
	store.Hours = input.Hours
	store.Latitude = nil
	store.Longitude = nil

	if input.Latitude != nil && input.Longitude != nil && geo.ValidCoordinate(*input.Latitude, *input.Longitude) {
		lat, lng := *input.Latitude, *input.Longitude
		store.Latitude = &lat
		store.Longitude = &lng
	}

	if err := s.storeRepo.UpdateStoreSettings(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to update store settings")
	}

	return store, nil
}

func (s *storeService) AddProduct(ctx context.Context, storeID int64, input *usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.findStore(ctx, storeID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		StoreID:  storeID,
		Name:     input.Name,
		SKU:      input.SKU,
		Price:    input.Price,
		Category: normalizeCategory(input.Category),
		Stock:    input.Stock,
		Supplier: input.Supplier,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (s *storeService) EditProduct(ctx context.Context, storeID, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := s.findOwnedProduct(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.SKU = input.SKU
	product.Price = input.Price
	product.Category = normalizeCategory(input.Category)
	product.Stock = input.Stock
	product.Supplier = input.Supplier

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes the product and every favorite referencing it in
// one transaction, so no favorite can outlive its product.
func (s *storeService) DeleteProduct(ctx context.Context, storeID, productID int64) error {
	if _, err := s.findOwnedProduct(ctx, storeID, productID); err != nil {
		return err
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewFavoriteRepository().DeleteFavoritesByProduct(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete favorites for product")
		}

		if err := factory.NewProductRepository().DeleteProduct(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
}

func (s *storeService) findStore(ctx context.Context, storeID int64) (*entity.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch store")
	}

	return store, nil
}

// findOwnedProduct fetches the product and verifies it belongs to the
// store before any mutation proceeds.
func (s *storeService) findOwnedProduct(ctx context.Context, storeID, productID int64) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch product")
	}

	if product.StoreID != storeID {
		return nil, domainerrors.ErrProductOwnership
	}

	return product, nil
}

func normalizeCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return entity.UncategorizedCategory
	}

	return category
}
