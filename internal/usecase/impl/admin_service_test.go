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

type adminServiceMocks struct {
	storeRepo    *mockRepo.MockStoreRepository
	productRepo  *mockRepo.MockProductRepository
	userRepo     *mockRepo.MockUserRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	txManager    *mockRepo.MockTransactionManager
}

func newAdminService(t *testing.T) (usecase.AdminUsecase, *adminServiceMocks) {
	t.Helper()

	mocks := &adminServiceMocks{
		storeRepo:    mockRepo.NewMockStoreRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
	}
	service := NewAdminService(AdminServiceParams{
		StoreRepo:    mocks.storeRepo,
		ProductRepo:  mocks.productRepo,
		UserRepo:     mocks.userRepo,
		FavoriteRepo: mocks.favoriteRepo,
		TxManager:    mocks.txManager,
	})

	return service, mocks
}

func TestAdminService_GetMarketplaceStats(t *testing.T) {
	service, mocks := newAdminService(t)
	ctx := context.Background()

	users := []repository.UserSummary{{ID: 1, Name: "Alice", Email: "alice@example.com", FavoritesCount: 3}}
	stores := []repository.StoreSummary{{ID: 1, Name: "Station Mart", ProductCount: 12, Revenue: 4500}}
	categories := []repository.CategoryCount{{Category: "Beverages", Count: 5}, {Category: "Snacks", Count: 7}}
	topStores := []*entity.Store{{ID: 1, Name: "Station Mart", Revenue: 4500}}

	mocks.storeRepo.EXPECT().CountStores(ctx).Return(int64(1), nil)
	mocks.productRepo.EXPECT().CountProducts(ctx).Return(int64(12), nil)
	mocks.userRepo.EXPECT().CountUsers(ctx).Return(int64(1), nil)
	mocks.userRepo.EXPECT().ListUserSummaries(ctx).Return(users, nil)
	mocks.storeRepo.EXPECT().ListStoreSummaries(ctx).Return(stores, nil)
	mocks.productRepo.EXPECT().CountProductsByCategory(ctx).Return(categories, nil)
	mocks.storeRepo.EXPECT().TotalRevenue(ctx).Return(4500.0, nil)
	mocks.storeRepo.EXPECT().TopStoresByRevenue(ctx, topStoreLimit).Return(topStores, nil)

	stats, err := service.GetMarketplaceStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.StoreCount)
	assert.Equal(t, int64(12), stats.ProductCount)
	assert.Equal(t, int64(1), stats.UserCount)
	assert.Equal(t, users, stats.Users)
	assert.Equal(t, stores, stats.Stores)
	assert.Equal(t, categories, stats.Categories)
	assert.Equal(t, 4500.0, stats.TotalRevenue)
	assert.Equal(t, topStores, stats.TopStores)
}

func TestAdminService_GetMarketplaceStats_CountFailure(t *testing.T) {
	service, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().CountStores(ctx).Return(int64(0), errors.New("connection refused"))

	stats, err := service.GetMarketplaceStats(ctx)
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestAdminService_RemoveUser_CascadesFavorites(t *testing.T) {
	service, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().UserExists(ctx, int64(42)).Return(true, nil)

	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
	txFactory.EXPECT().NewUserRepository().Return(txUserRepo)
	txFavoriteRepo.EXPECT().DeleteFavoritesByUser(ctx, int64(42)).Return(nil)
	txUserRepo.EXPECT().DeleteUser(ctx, int64(42)).Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})

	err := service.RemoveUser(ctx, 42)
	require.NoError(t, err)
}

func TestAdminService_RemoveUser_NotFound(t *testing.T) {
	service, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().UserExists(ctx, int64(42)).Return(false, nil)

	err := service.RemoveUser(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_RemoveStore_CascadesProductsAndFavorites(t *testing.T) {
	service, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().FindStoreByID(ctx, int64(1)).Return(&entity.Store{ID: 1}, nil)

	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
	txFactory.EXPECT().NewProductRepository().Return(txProductRepo)
	txFactory.EXPECT().NewStoreRepository().Return(txStoreRepo)
	txFavoriteRepo.EXPECT().DeleteFavoritesByStore(ctx, int64(1)).Return(nil)
	txProductRepo.EXPECT().DeleteProductsByStore(ctx, int64(1)).Return(nil)
	txStoreRepo.EXPECT().DeleteStore(ctx, int64(1)).Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})

	err := service.RemoveStore(ctx, 1)
	require.NoError(t, err)
}

func TestAdminService_RemoveStore_NotFound(t *testing.T) {
	service, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().FindStoreByID(ctx, int64(99)).Return(nil, repository.ErrStoreNotFound)

	err := service.RemoveStore(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestAdminService_RemoveStore_RollbackOnFailure(t *testing.T) {
	service, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.storeRepo.EXPECT().FindStoreByID(ctx, int64(1)).Return(&entity.Store{ID: 1}, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	err := service.RemoveStore(ctx, 1)
	assert.Error(t, err)
}
