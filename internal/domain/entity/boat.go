// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"tidewise/internal/domain/geo"
)

// BoatStatus is the safety state reported for a boat.
type BoatStatus string

const (
	BoatStatusSafe    BoatStatus = "safe"
	BoatStatusWarning BoatStatus = "warning"
	BoatStatusSOS     BoatStatus = "sos"
)

// IsValid checks if the status is a known value.
func (s BoatStatus) IsValid() bool {
	switch s {
	case BoatStatusSafe, BoatStatusWarning, BoatStatusSOS:
		return true
	default:
		return false
	}
}

// ZoneFisherman is the zone label given to boats registered by a fisherman client.
const ZoneFisherman = "FISHERMAN"

// Boat is a tracked vessel and its last known position.
type Boat struct {
	ID        string     `json:"id"`             // Boat identifier chosen by the client (e.g. "127", "F-001").
	Lat       float64    `json:"lat"`            // Last known latitude.
	Lng       float64    `json:"lng"`            // Last known longitude.
	Status    BoatStatus `json:"status"`         // Current safety status.
	Zone      string     `json:"zone,omitempty"` // Optional fishing zone label.
	UpdatedAt time.Time  `json:"updated_at"`     // Timestamp of the last position or status change.
}

// Position returns the boat's coordinate.
func (b *Boat) Position() geo.Coordinate {
	return geo.Coordinate{Lat: b.Lat, Lng: b.Lng}
}

// Clone returns a copy safe to hand out of the store.
func (b *Boat) Clone() *Boat {
	c := *b
	return &c
}
