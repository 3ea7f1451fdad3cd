// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"nearbuy/internal/domain/entity"
)

// SearchInput carries one raw search request as it arrives from the caller.
// Optional fields are pointers; malformed or absent values disable the
// corresponding feature rather than failing the request.
type SearchInput struct {
	Query   string   // Free-text query; empty matches all products.
	Filter  string   // Category selector; empty or "all" disables category filtering.
	UserLat *float64 // Caller latitude in decimal degrees.
	UserLng *float64 // Caller longitude in decimal degrees.
	Radius  *float64 // Requested radius in kilometers.
	UserID  *int64   // Resolved identity, when present; used to flag favorites.
}

// GeoConstraint is the optional radius constraint for the favorites view.
type GeoConstraint struct {
	UserLat *float64
	UserLng *float64
	Radius  *float64
}

// SearchResult is one evaluated, ranked result set together with its
// derived best-price selection. BestPrice is nil when no entry carries a
// positive price; that is an expected empty state, not a failure.
type SearchResult struct {
	Entries   []*entity.SearchEntry `json:"products"`
	BestPrice *entity.SearchEntry   `json:"bestPrice,omitempty"`
}

// SearchUsecase is the geospatial product search and ranking engine.
type SearchUsecase interface {
	// Search normalizes the raw input into a filter specification,
	// evaluates it against the full catalog and returns the ranked
	// entries plus the best-price selection.
	Search(ctx context.Context, input *SearchInput) (*SearchResult, error)
}
