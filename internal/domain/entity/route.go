package entity

import "tidewise/internal/domain/geo"

// RoutePlan is a suggested passage from start to destination.
type RoutePlan struct {
	Start           geo.Coordinate   `json:"start"`
	Destination     geo.Coordinate   `json:"destination"`
	Waypoints       []geo.Coordinate `json:"waypoints"` // Start, optional detour, destination.
	Detour          bool             `json:"detour"`
	AvoidedZone     string           `json:"avoided_zone,omitempty"`
	DistanceMeters  float64          `json:"distance_m"`
	SpeedKnots      float64          `json:"speed_kt"`
	DurationMinutes float64          `json:"duration_min"`
	Heading         string           `json:"heading"`
	BearingDegrees  float64          `json:"bearing_deg"`
}
