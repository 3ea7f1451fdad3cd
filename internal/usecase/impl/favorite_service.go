package impl

import (
	"context"

	"nearbuy/config"
	"nearbuy/internal/domain/entity"
	domainerrors "nearbuy/internal/domain/errors"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	catalogRepo  repository.CatalogRepository
	search       *config.SearchConfig
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	ProductRepo  repository.ProductRepository
	CatalogRepo  repository.CatalogRepository
	Config       *config.Config
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	search := params.Config.Search
	if search == nil {
		search = &config.SearchConfig{}
	}
	search.Normalize()

	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		productRepo:  params.ProductRepo,
		catalogRepo:  params.CatalogRepo,
		search:       search,
	}
}

// AddFavorite records the pairing between a user and a product. Adding a
// product that is already favorited is a no-op reported through the added
// flag, so concurrent adds of the same pair all succeed.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, domainerrors.ErrProductNotFound
		}

		return false, errors.Wrap(err, "failed to verify product before favoriting")
	}

	favorite := &entity.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}

	if err := s.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to create favorite")
	}

	return true, nil
}

// RemoveFavorite deletes the pairing. An absent pairing surfaces as
// repository.ErrFavoriteNotFound with no side effects.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	if err := s.favoriteRepo.DeleteFavorite(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	favorited, err := s.favoriteRepo.IsFavorite(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return favorited, nil
}

// ListFavorites returns the user's favorited products through the same
// evaluation pipeline as catalog search: when a geo constraint is supplied
// the list is distance-filtered and distance-ranked, otherwise it is
// ordered by name. Every entry is flagged as a favorite by construction.
func (s *favoriteService) ListFavorites(ctx context.Context, userID int64, constraint *usecase.GeoConstraint) (*usecase.SearchResult, error) {
	candidates, err := s.catalogRepo.FindFavoriteJoinedProducts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch favorite catalog")
	}

	input := &usecase.SearchInput{}
	if constraint != nil {
		input.UserLat = constraint.UserLat
		input.UserLng = constraint.UserLng
		input.Radius = constraint.Radius
	}
	filter := normalizeFilter(input, s.search.MaxRadiusKm)

	entries := evaluateFilter(candidates, filter)
	rankEntries(entries, filter.RadiusActive())
	entries = truncateEntries(entries, s.search.MaxResults)

	for _, entry := range entries {
		flag := true
		entry.IsFavorite = &flag
	}

	return &usecase.SearchResult{
		Entries:   entries,
		BestPrice: selectBestPrice(entries),
	}, nil
}
