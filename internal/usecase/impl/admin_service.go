package impl

import (
	"context"

	domainerrors "nearbuy/internal/domain/errors"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const topStoreLimit = 5

type adminService struct {
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	txManager    repository.TransactionManager
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	StoreRepo    repository.StoreRepository
	ProductRepo  repository.ProductRepository
	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	TxManager    repository.TransactionManager
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		storeRepo:    params.StoreRepo,
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		favoriteRepo: params.FavoriteRepo,
		txManager:    params.TxManager,
	}
}

func (s *adminService) GetMarketplaceStats(ctx context.Context) (*usecase.MarketplaceStats, error) {
	storeCount, err := s.storeRepo.CountStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	productCount, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	users, err := s.userRepo.ListUserSummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user summaries")
	}

	stores, err := s.storeRepo.ListStoreSummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store summaries")
	}

	categories, err := s.productRepo.CountProductsByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	totalRevenue, err := s.storeRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	topStores, err := s.storeRepo.TopStoresByRevenue(ctx, topStoreLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top stores")
	}

	return &usecase.MarketplaceStats{
		StoreCount:   storeCount,
		ProductCount: productCount,
		UserCount:    userCount,
		Users:        users,
		Stores:       stores,
		Categories:   categories,
		TotalRevenue: totalRevenue,
		TopStores:    topStores,
	}, nil
}

// RemoveUser deletes the user and all favorites the user owns in one
// transaction.
func (s *adminService) RemoveUser(ctx context.Context, userID int64) error {
	exists, err := s.userRepo.UserExists(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check user")
	}
	if !exists {
		return domainerrors.ErrUserNotFound
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewFavoriteRepository().DeleteFavoritesByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete favorites for user")
		}

		if err := factory.NewUserRepository().DeleteUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
}

// RemoveStore deletes the store, its products and every favorite
// referencing them in one transaction, favorites first so no edge is left
// dangling if a later step fails.
func (s *adminService) RemoveStore(ctx context.Context, storeID int64) error {
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to fetch store")
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewFavoriteRepository().DeleteFavoritesByStore(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete favorites for store")
		}

		if err := factory.NewProductRepository().DeleteProductsByStore(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete products for store")
		}

		if err := factory.NewStoreRepository().DeleteStore(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete store")
		}

		return nil
	})
}
