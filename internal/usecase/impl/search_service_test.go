package impl

import (
	"context"
	"errors"
	"testing"

	"nearbuy/config"
	"nearbuy/internal/domain/entity"
	mockRepo "nearbuy/internal/mocks/repository"
	"nearbuy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func ptrInt64(v int64) *int64 { return &v }

func newSearchService(t *testing.T, catalog []*entity.SearchEntry) (usecase.SearchUsecase, *mockRepo.MockCatalogRepository, *mockRepo.MockFavoriteRepository) {
	t.Helper()

	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	service := NewSearchService(SearchServiceParams{
		CatalogRepo:  mockCatalogRepo,
		FavoriteRepo: mockFavoriteRepo,
		Config:       &config.Config{Search: &config.SearchConfig{}},
	})

	if catalog != nil {
		mockCatalogRepo.EXPECT().FindJoinedProducts(context.Background()).Return(catalog, nil)
	}

	return service, mockCatalogRepo, mockFavoriteRepo
}

// Stores around Taipei Main Station: one a few hundred meters away, one a
// couple of kilometers, one far outside the city, one without a coordinate
// and one carrying the legacy (0,0) sentinel.
func testCatalog() []*entity.SearchEntry {
	return []*entity.SearchEntry{
		{ID: 1, Name: "Oolong Tea", SKU: "TEA-001", Price: 120, Category: "Beverages", StoreID: 1, Store: "Station Mart", Latitude: ptrFloat(25.0480), Longitude: ptrFloat(121.5170)},
		{ID: 2, Name: "Green Tea", SKU: "TEA-002", Price: 90, Category: "Beverages", StoreID: 2, Store: "River Shop", Latitude: ptrFloat(25.0700), Longitude: ptrFloat(121.5200)},
		{ID: 3, Name: "Black Tea", SKU: "TEA-003", Price: 85, Category: "Beverages", StoreID: 3, Store: "Harbor Store", Latitude: ptrFloat(25.1300), Longitude: ptrFloat(121.7400)},
		{ID: 4, Name: "Jasmine Tea", SKU: "TEA-004", Price: 110, Category: "Beverages", StoreID: 4, Store: "No Location"},
		{ID: 5, Name: "Chamomile Tea", SKU: "TEA-005", Price: 95, Category: "Beverages", StoreID: 5, Store: "Legacy Store", Latitude: ptrFloat(0), Longitude: ptrFloat(0)},
		{ID: 6, Name: "Rice Crackers", SKU: "SNK-001", Price: 60, Category: "Snacks", StoreID: 1, Store: "Station Mart", Latitude: ptrFloat(25.0480), Longitude: ptrFloat(121.5170)},
	}
}

func TestSearchService_Search_TextMatchesNameSKUAndCategory(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		query string
		ids   []int64
	}{
		{"empty query matches everything", "", []int64{1, 2, 3, 4, 5, 6}},
		{"name substring", "green", []int64{2}},
		{"sku substring", "snk", []int64{6}},
		{"category substring", "snack", []int64{6}},
		{"case and whitespace normalized", "  OOLONG  ", []int64{1}},
		{"no match", "coffee", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, _ := newSearchService(t, testCatalog())

			result, err := service.Search(ctx, &usecase.SearchInput{Query: tc.query})
			require.NoError(t, err)

			ids := make([]int64, 0, len(result.Entries))
			for _, entry := range result.Entries {
				ids = append(ids, entry.ID)
			}
			assert.ElementsMatch(t, tc.ids, ids)
		})
	}
}

func TestSearchService_Search_CategoryFilter(t *testing.T) {
	ctx := context.Background()

	service, _, _ := newSearchService(t, testCatalog())
	result, err := service.Search(ctx, &usecase.SearchInput{Filter: "Snacks"})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, int64(6), result.Entries[0].ID)

	// "all" and empty both disable the category predicate.
	service, _, _ = newSearchService(t, testCatalog())
	result, err = service.Search(ctx, &usecase.SearchInput{Filter: "all"})
	require.NoError(t, err)
	assert.Len(t, result.Entries, 6)

	service, _, _ = newSearchService(t, testCatalog())
	result, err = service.Search(ctx, &usecase.SearchInput{Filter: ""})
	require.NoError(t, err)
	assert.Len(t, result.Entries, 6)

	// Category matching is exact, not substring.
	service, _, _ = newSearchService(t, testCatalog())
	result, err = service.Search(ctx, &usecase.SearchInput{Filter: "Snack"})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestSearchService_Search_NameOrderingWithoutRadius(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newSearchService(t, testCatalog())

	result, err := service.Search(ctx, &usecase.SearchInput{})
	require.NoError(t, err)

	names := make([]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"Black Tea", "Chamomile Tea", "Green Tea", "Jasmine Tea", "Oolong Tea", "Rice Crackers"}, names)

	for _, entry := range result.Entries {
		assert.Nil(t, entry.Distance)
	}
}

func TestSearchService_Search_RadiusFilterAndDistanceOrdering(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newSearchService(t, testCatalog())

	// Taipei Main Station, 5 km radius: keeps stores 1 and 2, drops the
	// distant store, the store without a coordinate and the (0,0) row.
	result, err := service.Search(ctx, &usecase.SearchInput{
		UserLat: ptrFloat(25.0478),
		UserLng: ptrFloat(121.5170),
		Radius:  ptrFloat(5),
	})
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	// Station Mart entries are nearest; tie between them resolves by name.
	assert.Equal(t, int64(1), result.Entries[0].ID)
	assert.Equal(t, int64(6), result.Entries[1].ID)
	assert.Equal(t, int64(2), result.Entries[2].ID)

	for _, entry := range result.Entries {
		require.NotNil(t, entry.Distance)
		assert.LessOrEqual(t, *entry.Distance, 5.0)
	}
	assert.Less(t, *result.Entries[0].Distance, *result.Entries[2].Distance)
}

func TestSearchService_Search_MalformedGeoInputDisablesRadius(t *testing.T) {
	ctx := context.Background()
	nan := ptrFloat(0)
	*nan = *nan / *nan // NaN

	cases := []struct {
		name  string
		input *usecase.SearchInput
	}{
		{"missing longitude", &usecase.SearchInput{UserLat: ptrFloat(25.0), Radius: ptrFloat(5)}},
		{"missing radius", &usecase.SearchInput{UserLat: ptrFloat(25.0), UserLng: ptrFloat(121.5)}},
		{"latitude out of range", &usecase.SearchInput{UserLat: ptrFloat(91), UserLng: ptrFloat(121.5), Radius: ptrFloat(5)}},
		{"latitude not a number", &usecase.SearchInput{UserLat: nan, UserLng: ptrFloat(121.5), Radius: ptrFloat(5)}},
		{"zero radius", &usecase.SearchInput{UserLat: ptrFloat(25.0), UserLng: ptrFloat(121.5), Radius: ptrFloat(0)}},
		{"negative radius", &usecase.SearchInput{UserLat: ptrFloat(25.0), UserLng: ptrFloat(121.5), Radius: ptrFloat(-3)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, _ := newSearchService(t, testCatalog())

			result, err := service.Search(ctx, tc.input)
			require.NoError(t, err)

			// Radius disabled: full catalog, no distances.
			assert.Len(t, result.Entries, 6)
			for _, entry := range result.Entries {
				assert.Nil(t, entry.Distance)
			}
		})
	}
}

func TestSearchService_Search_RadiusClampedToConfiguredMax(t *testing.T) {
	ctx := context.Background()
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	service := NewSearchService(SearchServiceParams{
		CatalogRepo:  mockCatalogRepo,
		FavoriteRepo: mockFavoriteRepo,
		Config:       &config.Config{Search: &config.SearchConfig{MaxRadiusKm: 10}},
	})

	mockCatalogRepo.EXPECT().FindJoinedProducts(ctx).Return(testCatalog(), nil)

	// A 10000 km request behaves as a 10 km one, so the harbor store
	// (roughly 24 km away) is still excluded.
	result, err := service.Search(ctx, &usecase.SearchInput{
		UserLat: ptrFloat(25.0478),
		UserLng: ptrFloat(121.5170),
		Radius:  ptrFloat(10000),
	})
	require.NoError(t, err)

	for _, entry := range result.Entries {
		assert.NotEqual(t, int64(3), entry.ID)
	}
}

func TestSearchService_Search_TruncatesAfterOrdering(t *testing.T) {
	ctx := context.Background()
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	service := NewSearchService(SearchServiceParams{
		CatalogRepo:  mockCatalogRepo,
		FavoriteRepo: mockFavoriteRepo,
		Config:       &config.Config{Search: &config.SearchConfig{MaxResults: 2}},
	})

	mockCatalogRepo.EXPECT().FindJoinedProducts(ctx).Return(testCatalog(), nil)

	// The nearest entries survive the cap even though they are not the
	// first rows of the join.
	result, err := service.Search(ctx, &usecase.SearchInput{
		UserLat: ptrFloat(25.0478),
		UserLng: ptrFloat(121.5170),
		Radius:  ptrFloat(50),
	})
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, int64(1), result.Entries[0].ID)
	assert.Equal(t, int64(6), result.Entries[1].ID)
}

func TestSearchService_Search_BestPrice(t *testing.T) {
	ctx := context.Background()

	catalog := []*entity.SearchEntry{
		{ID: 1, Name: "Alpha", Price: 50},
		{ID: 2, Name: "Bravo", Price: 30},
		{ID: 3, Name: "Charlie", Price: 0},
		{ID: 4, Name: "Delta", Price: 30},
	}

	service, _, _ := newSearchService(t, catalog)
	result, err := service.Search(ctx, &usecase.SearchInput{})
	require.NoError(t, err)

	// Lowest positive price wins; the tie keeps the first entry in ranked
	// order (Bravo before Delta).
	require.NotNil(t, result.BestPrice)
	assert.Equal(t, int64(2), result.BestPrice.ID)
}

func TestSearchService_Search_BestPriceNilWhenNothingPriced(t *testing.T) {
	ctx := context.Background()

	catalog := []*entity.SearchEntry{
		{ID: 1, Name: "Alpha", Price: 0},
		{ID: 2, Name: "Bravo", Price: -1},
	}

	service, _, _ := newSearchService(t, catalog)
	result, err := service.Search(ctx, &usecase.SearchInput{})
	require.NoError(t, err)
	assert.Nil(t, result.BestPrice)
}

func TestSearchService_Search_FlagsFavoritesWithOneLookup(t *testing.T) {
	ctx := context.Background()
	service, _, mockFavoriteRepo := newSearchService(t, testCatalog())

	mockFavoriteRepo.EXPECT().
		ListFavoriteProductIDs(ctx, int64(42)).
		Return([]int64{1, 6}, nil).
		Once()

	result, err := service.Search(ctx, &usecase.SearchInput{UserID: ptrInt64(42)})
	require.NoError(t, err)

	for _, entry := range result.Entries {
		require.NotNil(t, entry.IsFavorite)
		assert.Equal(t, entry.ID == 1 || entry.ID == 6, *entry.IsFavorite)
	}
}

func TestSearchService_Search_AnonymousHasNoFavoriteFlag(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newSearchService(t, testCatalog())

	result, err := service.Search(ctx, &usecase.SearchInput{})
	require.NoError(t, err)

	for _, entry := range result.Entries {
		assert.Nil(t, entry.IsFavorite)
	}
}

func TestSearchService_Search_CatalogFailure(t *testing.T) {
	ctx := context.Background()
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	service := NewSearchService(SearchServiceParams{
		CatalogRepo:  mockCatalogRepo,
		FavoriteRepo: mockFavoriteRepo,
		Config:       &config.Config{Search: &config.SearchConfig{}},
	})

	mockCatalogRepo.EXPECT().
		FindJoinedProducts(ctx).
		Return(nil, errors.New("connection refused"))

	result, err := service.Search(ctx, &usecase.SearchInput{Query: "tea"})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSearchService_Search_FavoriteLookupFailure(t *testing.T) {
	ctx := context.Background()
	service, _, mockFavoriteRepo := newSearchService(t, testCatalog())

	mockFavoriteRepo.EXPECT().
		ListFavoriteProductIDs(ctx, int64(42)).
		Return(nil, errors.New("connection refused"))

	result, err := service.Search(ctx, &usecase.SearchInput{UserID: ptrInt64(42)})
	assert.Error(t, err)
	assert.Nil(t, result)
}
