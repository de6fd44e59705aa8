package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHaversine_Equator verifies the distance for 0.01 degrees of longitude
// at the equator, the reference span used by the delivery simulation.
func TestHaversine_Equator(t *testing.T) {
	d := Haversine(0, 0, 0, 0.01)
	assert.InDelta(t, 1113.2, d, 1.0)
}

// TestHaversine_ZeroDistance verifies that identical points are 0 meters apart.
func TestHaversine_ZeroDistance(t *testing.T) {
	d := Haversine(40.75538, -73.97456, 40.75538, -73.97456)
	assert.Equal(t, 0.0, d)
}

// TestHaversine_KnownCity verifies a known city pair within tolerance.
func TestHaversine_KnownCity(t *testing.T) {
	// Midtown Manhattan to central London, roughly 5570 km.
	d := Haversine(40.75538, -73.97456, 51.513132, -0.140924)
	assert.InDelta(t, 5570e3, d, 20e3)
}

// TestBearingDeg verifies cardinal bearings and range.
func TestBearingDeg(t *testing.T) {
	t.Run("DueEast", func(t *testing.T) {
		assert.InDelta(t, 90.0, BearingDeg(0, 0, 0, 1), 0.01)
	})

	t.Run("DueNorth", func(t *testing.T) {
		assert.InDelta(t, 0.0, BearingDeg(0, 0, 1, 0), 0.01)
	})

	t.Run("DueWest", func(t *testing.T) {
		assert.InDelta(t, 270.0, BearingDeg(0, 0, 0, -1), 0.01)
	})

	t.Run("Range", func(t *testing.T) {
		b := BearingDeg(51.5, -0.1, 40.7, -74.0)
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
	})
}

// TestInterpolate verifies endpoints and midpoint.
func TestInterpolate(t *testing.T) {
	assert.Equal(t, 2.0, Interpolate(2, 8, 0))
	assert.Equal(t, 8.0, Interpolate(2, 8, 1))
	assert.Equal(t, 5.0, Interpolate(2, 8, 0.5))
}

// TestLerp verifies straight-line interpolation between two points.
func TestLerp(t *testing.T) {
	a := Point{Lat: 0, Lon: 0}
	b := Point{Lat: 1, Lon: 2}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, Point{Lat: 0.5, Lon: 1}, Lerp(a, b, 0.5))
}

// TestPoint_DistanceTo verifies the Point method agrees with Haversine.
func TestPoint_DistanceTo(t *testing.T) {
	p := Point{Lat: 0, Lon: 0}
	q := Point{Lat: 0, Lon: 0.01}
	assert.Equal(t, Haversine(0, 0, 0, 0.01), p.DistanceTo(q))
	assert.InDelta(t, 90.0, p.BearingTo(q), 0.01)
}
