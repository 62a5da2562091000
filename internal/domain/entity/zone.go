package entity

import "tidewise/internal/domain/geo"

// ZoneKind separates restricted waters from shelter areas.
type ZoneKind string

const (
	ZoneKindDanger ZoneKind = "danger"
	ZoneKindSafe   ZoneKind = "safe"
)

// Zone is a circular area on the water.
type Zone struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         ZoneKind `json:"kind"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	RadiusMeters float64  `json:"radius_m"`
}

// Center returns the zone centre.
func (z *Zone) Center() geo.Coordinate {
	return geo.Coordinate{Lat: z.Lat, Lng: z.Lng}
}

// Contains reports whether c lies inside the zone, boundary included.
func (z *Zone) Contains(c geo.Coordinate) bool {
	return geo.Within(z.Center(), c, z.RadiusMeters)
}

// Harbor is a safe harbor a boat can run for.
type Harbor struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// PositionCheck is the geofencing verdict for a single position.
type PositionCheck struct {
	Position      geo.Coordinate `json:"position"`
	DangerZones   []*Zone        `json:"danger_zones"`
	InDanger      bool           `json:"in_danger"`
	NearestSafe   *Zone          `json:"nearest_safe_zone,omitempty"`
	NearestSafeM  float64        `json:"nearest_safe_distance_m,omitempty"`
	NearCoast     bool           `json:"near_coast"`
	Warning       string         `json:"warning,omitempty"`
	WarningLocale string         `json:"warning_locale,omitempty"`
}
