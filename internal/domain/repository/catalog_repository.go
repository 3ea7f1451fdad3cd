// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
)

// CatalogRepository is the read-only catalog collaborator for the search
// pipeline. It returns store-joined products; all filtering, ordering and
// truncation is the evaluator's responsibility, not the reader's.
type CatalogRepository interface {
	// FindJoinedProducts retrieves every product joined with its owning
	// store's name, address, hours and coordinate.
	FindJoinedProducts(ctx context.Context) ([]*entity.SearchEntry, error)

	// FindFavoriteJoinedProducts retrieves the store-joined products the
	// given user has favorited.
	FindFavoriteJoinedProducts(ctx context.Context, userID int64) ([]*entity.SearchEntry, error)
}
