package usecase

import "context"

// FavoriteUsecase manages user-scoped favorites and evaluates the
// favorites view through the same ranking/best-price pipeline as search.
type FavoriteUsecase interface {
	// AddFavorite creates the (user, product) edge. Adding an existing
	// favorite is a successful no-op; added reports whether a new edge
	// was created.
	AddFavorite(ctx context.Context, userID, productID int64) (added bool, err error)

	// RemoveFavorite deletes the (user, product) edge. Removing a
	// non-existent favorite reports repository.ErrFavoriteNotFound
	// without side effects.
	RemoveFavorite(ctx context.Context, userID, productID int64) error

	// IsFavorite reports whether the user has favorited the product.
	IsFavorite(ctx context.Context, userID, productID int64) (bool, error)

	// ListFavorites returns the user's favorited products joined with
	// their stores. Without a constraint the full set is returned ordered
	// by name; with an active radius constraint the identical radius
	// filter, distance-first ordering and best-price selection apply.
	ListFavorites(ctx context.Context, userID int64, constraint *GeoConstraint) (*SearchResult, error)
}
