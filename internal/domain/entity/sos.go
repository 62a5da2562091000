package entity

import (
	"time"

	"tidewise/internal/domain/geo"

	"github.com/google/uuid"
)

// SOSEvent is a single distress submission.
type SOSEvent struct {
	ID     uuid.UUID `json:"id"`      // Time-ordered UUID of the event.
	BoatID string    `json:"boat_id"` // The boat that raised the distress signal.
	Time   time.Time `json:"time"`    // Wall-clock time of the submission.
	Lat    float64   `json:"lat"`     // Distress latitude.
	Lng    float64   `json:"lng"`     // Distress longitude.
	Seq    uint64    `json:"-"`       // Store-assigned ordering key; higher is newer.
}

// Position returns the distress coordinate.
func (e *SOSEvent) Position() geo.Coordinate {
	return geo.Coordinate{Lat: e.Lat, Lng: e.Lng}
}

// DistressReceipt is returned to the caller of a distress submission.
type DistressReceipt struct {
	Event         *SOSEvent       `json:"event"`
	Queued        bool            `json:"queued"`         // True when the event went to the offline queue.
	Notifications []*Notification `json:"notifications"`  // Notifications created by this submission, newest first.
	NotifiedBoats []string        `json:"notified_boats"` // Boats inside the alert radius, in discovery order.
}
