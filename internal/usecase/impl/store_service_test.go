package impl

import (
	"context"
	"errors"
	"testing"

	"nearbuy/internal/domain/entity"
	domainerrors "nearbuy/internal/domain/errors"
	"nearbuy/internal/domain/repository"
	mockRepo "nearbuy/internal/mocks/repository"
	"nearbuy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoreService(t *testing.T) (usecase.StoreUsecase, *mockRepo.MockStoreRepository, *mockRepo.MockProductRepository, *mockRepo.MockTransactionManager) {
	t.Helper()

	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	service := NewStoreService(StoreServiceParams{
		StoreRepo:   mockStoreRepo,
		ProductRepo: mockProductRepo,
		TxManager:   mockTxManager,
	})

	return service, mockStoreRepo, mockProductRepo, mockTxManager
}

func TestStoreService_GetStoreData(t *testing.T) {
	service, mockStoreRepo, mockProductRepo, _ := newStoreService(t)
	ctx := context.Background()

	store := &entity.Store{ID: 1, Name: "Station Mart"}
	inventory := []*entity.Product{
		{ID: 1, StoreID: 1, Name: "Oolong Tea"},
		{ID: 6, StoreID: 1, Name: "Rice Crackers"},
	}

	mockStoreRepo.EXPECT().FindStoreByID(ctx, int64(1)).Return(store, nil)
	mockProductRepo.EXPECT().FindProductsByStore(ctx, int64(1)).Return(inventory, nil)

	data, err := service.GetStoreData(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, store, data.Store)
	assert.Equal(t, inventory, data.Inventory)
}

func TestStoreService_GetStoreData_NotFound(t *testing.T) {
	service, mockStoreRepo, _, _ := newStoreService(t)
	ctx := context.Background()

	mockStoreRepo.EXPECT().FindStoreByID(ctx, int64(99)).Return(nil, repository.ErrStoreNotFound)

	data, err := service.GetStoreData(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	assert.Nil(t, data)
}

func TestStoreService_UpdateStoreSettings_SetsCoordinate(t *testing.T) {
	service, mockStoreRepo, _, _ := newStoreService(t)
	ctx := context.Background()

	mockStoreRepo.EXPECT().FindStoreByID(ctx, int64(1)).Return(&entity.Store{ID: 1, Name: "Station Mart"}, nil)
	mockStoreRepo.EXPECT().UpdateStoreSettings(ctx, mock.AnythingOfType("*entity.Store")).Return(nil)

	store, err := service.UpdateStoreSettings(ctx, 1, &usecase.StoreSettingsInput{
		Address:   "1 Main St",
		Location:  "Downtown",
		Hours:     "9-18",
		Latitude:  ptrFloat(25.0480),
		Longitude: ptrFloat(121.5170),
	})
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", store.Address)
	require.NotNil(t, store.Latitude)
	require.NotNil(t, store.Longitude)
	assert.Equal(t, 25.0480, *store.Latitude)
	assert.Equal(t, 121.5170, *store.Longitude)
}

func TestStoreService_UpdateStoreSettings_ClearsCoordinate(t *testing.T) {
	cases := []struct {
		name  string
		input *usecase.StoreSettingsInput
	}{
		{"both absent", &usecase.StoreSettingsInput{Address: "1 Main St"}},
		{"longitude absent", &usecase.StoreSettingsInput{Latitude: ptrFloat(25.0)}},
		{"latitude out of range", &usecase.StoreSettingsInput{Latitude: ptrFloat(95), Longitude: ptrFloat(121.5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockStoreRepo, _, _ := newStoreService(t)
			ctx := context.Background()

			existing := &entity.Store{ID: 1, Latitude: ptrFloat(25.0), Longitude: ptrFloat(121.5)}
			mockStoreRepo.EXPECT().FindStoreByID(ctx, int64(1)).Return(existing, nil)
			mockStoreRepo.EXPECT().UpdateStoreSettings(ctx, mock.AnythingOfType("*entity.Store")).Return(nil)

			store, err := service.UpdateStoreSettings(ctx, 1, tc.input)
			require.NoError(t, err)
			assert.Nil(t, store.Latitude)
			assert.Nil(t, store.Longitude)
		})
	}
}

func TestStoreService_AddProduct(t *testing.T) {
	service, mockStoreRepo, mockProductRepo, _ := newStoreService(t)
	ctx := context.Background()

	mockStoreRepo.EXPECT().FindStoreByID(ctx, int64(1)).Return(&entity.Store{ID: 1}, nil)
	mockProductRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.AddProduct(ctx, 1, &usecase.ProductInput{
		Name:     "Oolong Tea",
		SKU:      "TEA-001",
		Price:    120,
		Category: "Beverages",
		Stock:    10,
		Supplier: "Mountain Farms",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.StoreID)
	assert.Equal(t, "Beverages", product.Category)
}

func TestStoreService_AddProduct_DefaultsCategory(t *testing.T) {
	service, mockStoreRepo, mockProductRepo, _ := newStoreService(t)
	ctx := context.Background()

	mockStoreRepo.EXPECT().FindStoreByID(ctx, int64(1)).Return(&entity.Store{ID: 1}, nil)
	mockProductRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.AddProduct(ctx, 1, &usecase.ProductInput{Name: "Mystery Item", Category: "   "})
	require.NoError(t, err)
	assert.Equal(t, entity.UncategorizedCategory, product.Category)
}

func TestStoreService_EditProduct(t *testing.T) {
	service, _, mockProductRepo, _ := newStoreService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(&entity.Product{ID: 7, StoreID: 1, Name: "Oolong Tea", Price: 120}, nil)
	mockProductRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.EditProduct(ctx, 1, 7, &usecase.ProductInput{
		Name:     "Oolong Tea",
		SKU:      "TEA-001",
		Price:    135,
		Category: "Beverages",
	})
	require.NoError(t, err)
	assert.Equal(t, 135.0, product.Price)
}

func TestStoreService_EditProduct_OwnershipViolation(t *testing.T) {
	service, _, mockProductRepo, _ := newStoreService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(&entity.Product{ID: 7, StoreID: 2}, nil)

	product, err := service.EditProduct(ctx, 1, 7, &usecase.ProductInput{Name: "Oolong Tea"})
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnership)
	assert.Nil(t, product)
}

func TestStoreService_DeleteProduct_CascadesFavorites(t *testing.T) {
	service, _, mockProductRepo, mockTxManager := newStoreService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(&entity.Product{ID: 7, StoreID: 1}, nil)

	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
	txFactory.EXPECT().NewProductRepository().Return(txProductRepo)
	txFavoriteRepo.EXPECT().DeleteFavoritesByProduct(ctx, int64(7)).Return(nil)
	txProductRepo.EXPECT().DeleteProduct(ctx, int64(7)).Return(nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})

	err := service.DeleteProduct(ctx, 1, 7)
	require.NoError(t, err)
}

func TestStoreService_DeleteProduct_OwnershipViolation(t *testing.T) {
	service, _, mockProductRepo, _ := newStoreService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(&entity.Product{ID: 7, StoreID: 2}, nil)

	err := service.DeleteProduct(ctx, 1, 7)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnership)
}

func TestStoreService_DeleteProduct_TransactionFailure(t *testing.T) {
	service, _, mockProductRepo, mockTxManager := newStoreService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(&entity.Product{ID: 7, StoreID: 1}, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	err := service.DeleteProduct(ctx, 1, 7)
	assert.Error(t, err)
}
