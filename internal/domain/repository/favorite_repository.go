package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite edge does not exist.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (user, product) edge already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new (user, product) edge.
	// Returns ErrDuplicateFavorite when the edge already exists.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes the (user, product) edge.
	// Returns ErrFavoriteNotFound when no edge exists.
	DeleteFavorite(ctx context.Context, userID, productID int64) error

	// IsFavorite reports whether the (user, product) edge exists.
	IsFavorite(ctx context.Context, userID, productID int64) (bool, error)

	// ListFavoriteProductIDs retrieves all product IDs the user has favorited.
	// Used as a single batched membership lookup when flagging search results.
	ListFavoriteProductIDs(ctx context.Context, userID int64) ([]int64, error)

	// DeleteFavoritesByUser removes all favorites owned by a user.
	DeleteFavoritesByUser(ctx context.Context, userID int64) error

	// DeleteFavoritesByStore removes all favorites referencing products of a store.
	DeleteFavoritesByStore(ctx context.Context, storeID int64) error

	// DeleteFavoritesByProduct removes all favorites referencing a product.
	DeleteFavoritesByProduct(ctx context.Context, productID int64) error
}
