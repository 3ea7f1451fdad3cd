package impl

import (
	"context"
	"errors"
	"testing"

	"nearbuy/config"
	"nearbuy/internal/domain/entity"
	domainerrors "nearbuy/internal/domain/errors"
	"nearbuy/internal/domain/repository"
	mockRepo "nearbuy/internal/mocks/repository"
	"nearbuy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockFavoriteRepository, *mockRepo.MockProductRepository, *mockRepo.MockCatalogRepository) {
	t.Helper()

	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mockFavoriteRepo,
		ProductRepo:  mockProductRepo,
		CatalogRepo:  mockCatalogRepo,
		Config:       &config.Config{Search: &config.SearchConfig{}},
	})

	return service, mockFavoriteRepo, mockProductRepo, mockCatalogRepo
}

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	service, mockFavoriteRepo, mockProductRepo, _ := newFavoriteService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(&entity.Product{ID: 7, StoreID: 1, Name: "Oolong Tea"}, nil)

	mockFavoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(ctx context.Context, favorite *entity.Favorite) {
			assert.Equal(t, int64(42), favorite.UserID)
			assert.Equal(t, int64(7), favorite.ProductID)
		}).
		Return(nil)

	added, err := service.AddFavorite(ctx, 42, 7)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestFavoriteService_AddFavorite_AlreadyExists(t *testing.T) {
	service, mockFavoriteRepo, mockProductRepo, _ := newFavoriteService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(&entity.Product{ID: 7}, nil)

	mockFavoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	added, err := service.AddFavorite(ctx, 42, 7)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestFavoriteService_AddFavorite_ProductMissing(t *testing.T) {
	service, _, mockProductRepo, _ := newFavoriteService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(999)).
		Return(nil, repository.ErrProductNotFound)

	added, err := service.AddFavorite(ctx, 42, 999)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.False(t, added)
}

func TestFavoriteService_RemoveFavorite_Success(t *testing.T) {
	service, mockFavoriteRepo, _, _ := newFavoriteService(t)
	ctx := context.Background()

	mockFavoriteRepo.EXPECT().
		DeleteFavorite(ctx, int64(42), int64(7)).
		Return(nil)

	err := service.RemoveFavorite(ctx, 42, 7)
	require.NoError(t, err)
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	service, mockFavoriteRepo, _, _ := newFavoriteService(t)
	ctx := context.Background()

	mockFavoriteRepo.EXPECT().
		DeleteFavorite(ctx, int64(42), int64(7)).
		Return(repository.ErrFavoriteNotFound)

	err := service.RemoveFavorite(ctx, 42, 7)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	service, mockFavoriteRepo, _, _ := newFavoriteService(t)
	ctx := context.Background()

	mockFavoriteRepo.EXPECT().
		IsFavorite(ctx, int64(42), int64(7)).
		Return(true, nil)

	favorited, err := service.IsFavorite(ctx, 42, 7)
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_ListFavorites_NameOrdered(t *testing.T) {
	service, _, _, mockCatalogRepo := newFavoriteService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindFavoriteJoinedProducts(ctx, int64(42)).
		Return([]*entity.SearchEntry{
			{ID: 2, Name: "Green Tea", Price: 90},
			{ID: 1, Name: "Black Tea", Price: 85},
		}, nil)

	result, err := service.ListFavorites(ctx, 42, nil)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "Black Tea", result.Entries[0].Name)
	assert.Equal(t, "Green Tea", result.Entries[1].Name)

	for _, entry := range result.Entries {
		require.NotNil(t, entry.IsFavorite)
		assert.True(t, *entry.IsFavorite)
		assert.Nil(t, entry.Distance)
	}

	require.NotNil(t, result.BestPrice)
	assert.Equal(t, int64(1), result.BestPrice.ID)
}

func TestFavoriteService_ListFavorites_WithRadiusConstraint(t *testing.T) {
	service, _, _, mockCatalogRepo := newFavoriteService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindFavoriteJoinedProducts(ctx, int64(42)).
		Return([]*entity.SearchEntry{
			{ID: 1, Name: "Oolong Tea", Price: 120, Latitude: ptrFloat(25.0480), Longitude: ptrFloat(121.5170)},
			{ID: 2, Name: "Black Tea", Price: 85, Latitude: ptrFloat(25.1300), Longitude: ptrFloat(121.7400)},
			{ID: 3, Name: "Jasmine Tea", Price: 110},
		}, nil)

	result, err := service.ListFavorites(ctx, 42, &usecase.GeoConstraint{
		UserLat: ptrFloat(25.0478),
		UserLng: ptrFloat(121.5170),
		Radius:  ptrFloat(5),
	})
	require.NoError(t, err)

	// Only the near store survives; the distant one and the one without a
	// coordinate drop out, and the survivor carries its distance.
	require.Len(t, result.Entries, 1)
	assert.Equal(t, int64(1), result.Entries[0].ID)
	require.NotNil(t, result.Entries[0].Distance)

	require.NotNil(t, result.BestPrice)
	assert.Equal(t, int64(1), result.BestPrice.ID)
}

func TestFavoriteService_ListFavorites_CatalogFailure(t *testing.T) {
	service, _, _, mockCatalogRepo := newFavoriteService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindFavoriteJoinedProducts(ctx, int64(42)).
		Return(nil, errors.New("connection refused"))

	result, err := service.ListFavorites(ctx, 42, nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}
