package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	p := orb.Point{123.4350, 7.8308}

	assert.Zero(t, Distance(p, p))
}

func TestDistance_Symmetry(t *testing.T) {
	a := orb.Point{121.5654, 25.0330} // Taipei
	b := orb.Point{120.6736, 24.1477} // Taichung

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_KnownDistance(t *testing.T) {
	// Paris <-> London is roughly 344 km great-circle.
	paris := orb.Point{2.3522, 48.8566}
	london := orb.Point{-0.1278, 51.5074}

	d := Distance(paris, london)
	assert.InDelta(t, 344, d, 2)
}

func TestDistance_AntipodalPoints(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{180, 0}

	d := Distance(a, b)
	assert.False(t, math.IsNaN(d))
	// Half the Earth's circumference at R=6371.
	assert.InDelta(t, math.Pi*6371.0, d, 1)
}

func TestDistance_SmallSeparation(t *testing.T) {
	a := orb.Point{123.4350, 7.8308}
	b := orb.Point{123.4360, 7.8308}

	d := Distance(a, b)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 1.0)
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{name: "valid", lat: 7.8308, lng: 123.4350, want: true},
		{name: "equator prime meridian", lat: 0, lng: 0, want: true},
		{name: "lat out of range", lat: 91, lng: 0, want: false},
		{name: "lng out of range", lat: 0, lng: -181, want: false},
		{name: "nan lat", lat: math.NaN(), lng: 0, want: false},
		{name: "inf lng", lat: 0, lng: math.Inf(1), want: false},
		{name: "poles", lat: -90, lng: 180, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinate(tt.lat, tt.lng))
		})
	}
}
