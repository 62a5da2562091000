package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters_KnownValues(t *testing.T) {
	origin := Coordinate{Lat: 0, Lng: 0}

	tests := []struct {
		name   string
		target Coordinate
		want   float64
	}{
		{"same point", Coordinate{Lat: 0, Lng: 0}, 0},
		{"0.09 deg along equator", Coordinate{Lat: 0, Lng: 0.09}, 10007.543},
		{"0.0899 deg along equator", Coordinate{Lat: 0, Lng: 0.0899}, 9996.424},
		{"one degree of latitude", Coordinate{Lat: 1, Lng: 0}, 111194.927},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HaversineMeters(origin, tt.target), 0.01)
		})
	}
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	a := Coordinate{Lat: 16.50, Lng: 80.60}
	b := Coordinate{Lat: 16.40, Lng: 80.70}

	assert.InDelta(t, HaversineMeters(a, b), HaversineMeters(b, a), 1e-9)
}

func TestHaversineMeters_AntipodalClamp(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0, Lng: 180}

	d := HaversineMeters(a, b)

	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusMeters, d, 1)
}

func TestWithin_BoundaryInclusive(t *testing.T) {
	a := Coordinate{Lat: 15.75, Lng: 80.35}
	b := Coordinate{Lat: 15.80, Lng: 80.40}
	d := HaversineMeters(a, b)

	assert.True(t, Within(a, b, d))
	assert.False(t, Within(a, b, math.Nextafter(d, 0)))
}

func TestCoordinate_Valid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 16.5, Lng: 80.6}.Valid())
	assert.True(t, Coordinate{Lat: -90, Lng: 180}.Valid())
	assert.False(t, Coordinate{Lat: 91, Lng: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lng: -181}.Valid())
	assert.False(t, Coordinate{Lat: math.NaN(), Lng: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lng: math.Inf(1)}.Valid())
}

func TestBearingAndCardinal(t *testing.T) {
	origin := Coordinate{Lat: 0, Lng: 0}

	tests := []struct {
		target  Coordinate
		bearing float64
		heading string
	}{
		{Coordinate{Lat: 1, Lng: 0}, 0, "N"},
		{Coordinate{Lat: 0, Lng: 1}, 90, "E"},
		{Coordinate{Lat: -1, Lng: 0}, 180, "S"},
		{Coordinate{Lat: 0, Lng: -1}, 270, "W"},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			bearing := BearingDegrees(origin, tt.target)
			assert.InDelta(t, tt.bearing, bearing, 0.01)
			assert.Equal(t, tt.heading, CardinalFromBearing(bearing))
		})
	}

	assert.Equal(t, "NE", CardinalFromBearing(44))
	assert.Equal(t, "N", CardinalFromBearing(359))
	assert.Equal(t, "NW", CardinalFromBearing(-45))
}

func TestEstimateDurationMinutes(t *testing.T) {
	// 10 kt is 1852*10 m per hour.
	assert.InDelta(t, 60, EstimateDurationMinutes(18520, 10), 1e-9)
	assert.Zero(t, EstimateDurationMinutes(1000, 0))
	assert.Zero(t, EstimateDurationMinutes(0, 10))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "850 m", FormatDistance(850))
	assert.Equal(t, "1.0 km", FormatDistance(1000))
	assert.Equal(t, "12.3 km", FormatDistance(12345))
}
