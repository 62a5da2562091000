// Package geo implements the spherical-earth helpers used by the tracker:
// haversine distance, bearings and simple travel estimates.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean earth radius used for every distance in the service.
const EarthRadiusMeters = 6371000.0

// metersPerNauticalMile converts knots into meters per hour.
const metersPerNauticalMile = 1852.0

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the coordinate as an orb point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// FromPoint converts an orb point back to a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// Valid reports whether the coordinate is finite and inside earth bounds.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// HaversineMeters returns the great-circle distance between a and b.
// The intermediate term is clamped to [0,1] so rounding near antipodes
// never pushes asin out of its domain.
func HaversineMeters(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Within reports whether b lies within radiusMeters of a. The boundary is inclusive.
func Within(a, b Coordinate, radiusMeters float64) bool {
	return HaversineMeters(a, b) <= radiusMeters
}

// BearingDegrees returns the initial bearing from a to b, normalised to [0,360).
func BearingDegrees(a, b Coordinate) float64 {
	bearing := math.Mod(orbgeo.Bearing(a.Point(), b.Point()), 360)
	if bearing < 0 {
		bearing += 360
	}

	return bearing
}

var cardinals = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CardinalFromBearing maps a bearing to an 8-point compass heading.
func CardinalFromBearing(bearing float64) string {
	normalized := math.Mod(bearing, 360)
	if normalized < 0 {
		normalized += 360
	}
	idx := int(math.Round(normalized/45)) % len(cardinals)

	return cardinals[idx]
}

// EstimateDurationMinutes returns the travel time for distanceMeters at speedKnots.
func EstimateDurationMinutes(distanceMeters, speedKnots float64) float64 {
	if speedKnots <= 0 || distanceMeters <= 0 {
		return 0
	}
	metersPerMinute := speedKnots * metersPerNauticalMile / 60

	return distanceMeters / metersPerMinute
}

// FormatDistance renders a distance for alert text: meters below 1 km, else km with one decimal.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
