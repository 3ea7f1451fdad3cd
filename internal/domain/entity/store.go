package entity

import "github.com/paulmach/orb"

// Store is the core entity for a registered seller location.
// It owns zero or more products.
type Store struct {
	ID        int64    // Unique numeric identifier.
	Name      string   // Unique, case-insensitively.
	Address   string   // Street address shown to customers.
	Location  string   // Free-form location label.
	Hours     string   // Operating hours text.
	Latitude  *float64 // Geographic latitude; nil when the store has no coordinate.
	Longitude *float64 // Geographic longitude; nil when the store has no coordinate.
	Revenue   float64  // Accumulated revenue.
	Customers int      // Accumulated customer count.
}

// Coordinate returns the store's geographic point and whether the store is
// eligible for radius filtering. Stores without a stored coordinate, and
// legacy rows carrying the (0,0) sentinel, are never radius-eligible.
func (s *Store) Coordinate() (orb.Point, bool) {
	return coordinateOf(s.Latitude, s.Longitude)
}

// coordinateOf applies the shared eligibility rule for optional coordinates.
func coordinateOf(lat, lng *float64) (orb.Point, bool) {
	if lat == nil || lng == nil {
		return orb.Point{}, false
	}
	if *lat == 0 && *lng == 0 {
		// Legacy "no location" sentinel.
		return orb.Point{}, false
	}

	return orb.Point{*lng, *lat}, true
}
