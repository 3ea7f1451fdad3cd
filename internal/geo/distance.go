// Package geo provides great-circle distance computation for
// radius-constrained catalog searches.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// Distance calculates the great-circle distance between two points in
// kilometers using the Haversine formula. Points follow the orb convention:
// X is longitude, Y is latitude, in decimal degrees.
//
// The formula is numerically stable for coincident points (returns exactly 0)
// and for antipodal points (the argument to Sqrt is clamped into [0,1]).
func Distance(p1, p2 orb.Point) float64 {
	if p1 == p2 {
		return 0
	}

	lat1Rad := p1.Lat() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	deltaLat := (p2.Lat() - p1.Lat()) * math.Pi / 180
	deltaLng := (p2.Lon() - p1.Lon()) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// Floating error can push a marginally outside [0,1] near antipodes.
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidCoordinate reports whether a latitude/longitude pair is finite and
// within Earth bounds. Out-of-range input is rejected by callers before any
// distance computation.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 &&
		lng >= -180 && lng <= 180
}
