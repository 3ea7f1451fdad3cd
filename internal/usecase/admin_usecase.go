package usecase

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
)

// MarketplaceStats is the admin overview of the marketplace.
type MarketplaceStats struct {
	StoreCount   int64                      `json:"storeCount"`
	ProductCount int64                      `json:"productCount"`
	UserCount    int64                      `json:"userCount"`
	Users        []repository.UserSummary   `json:"users"`
	Stores       []repository.StoreSummary  `json:"stores"`
	Categories   []repository.CategoryCount `json:"categories"`
	TotalRevenue float64                    `json:"totalRevenue"`
	TopStores    []*entity.Store            `json:"topStores"`
}

// AdminUsecase covers the administrative surface: marketplace statistics
// and account removal with cascading cleanup.
type AdminUsecase interface {
	// GetMarketplaceStats aggregates counts, per-entity summaries, the
	// category breakdown, total revenue and the top stores by revenue.
	GetMarketplaceStats(ctx context.Context) (*MarketplaceStats, error)

	// RemoveUser deletes a user and all favorites the user owns.
	RemoveUser(ctx context.Context, userID int64) error

	// RemoveStore deletes a store, its products and any favorites
	// referencing them, atomically.
	RemoveStore(ctx context.Context, storeID int64) error
}
