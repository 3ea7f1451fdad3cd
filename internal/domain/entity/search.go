package entity

import "github.com/paulmach/orb"

// CategoryAll is the category selector value that disables category filtering.
const CategoryAll = "all"

// SearchFilter is the canonical, fully normalized filter specification for
// one catalog evaluation. It is an explicit value passed into every search;
// no filter state is held between evaluations.
type SearchFilter struct {
	Query    string     // Lower-cased, trimmed text query; empty matches everything.
	Category string     // Exact category value, or CategoryAll to disable.
	Origin   *orb.Point // Caller position; nil when no usable coordinate was supplied.
	RadiusKm float64    // Requested radius in kilometers; meaningful only with Origin.
}

// RadiusActive reports whether radius filtering applies to this evaluation.
// It requires both a usable origin and a positive radius.
func (f *SearchFilter) RadiusActive() bool {
	return f.Origin != nil && f.RadiusKm > 0
}

// CategoryActive reports whether an exact category predicate applies.
func (f *SearchFilter) CategoryActive() bool {
	return f.Category != CategoryAll
}

// SearchEntry is one product joined with its owning store, as produced by
// the catalog reader and consumed by the ranking pipeline. Distance, once
// computed, is immutable for the lifetime of the result.
type SearchEntry struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	SKU        string   `json:"sku"`
	Price      float64  `json:"price"`
	Category   string   `json:"category"`
	Stock      int      `json:"stock"`
	Supplier   string   `json:"supplier"`
	StoreID    int64    `json:"storeId"`
	Store      string   `json:"store"`
	Address    string   `json:"address"`
	Hours      string   `json:"hours"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Distance   *float64 `json:"distance,omitempty"`   // Kilometers from origin; present iff radius filtering was active.
	IsFavorite *bool    `json:"isFavorite,omitempty"` // Present iff the caller supplied an identity.
}

// Coordinate returns the owning store's point and radius eligibility,
// under the same rule as Store.Coordinate.
func (e *SearchEntry) Coordinate() (orb.Point, bool) {
	return coordinateOf(e.Latitude, e.Longitude)
}
