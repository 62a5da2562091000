package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType distinguishes boat alerts from the authority alert.
type NotificationType string

const (
	NotificationTypeSOSAlert       NotificationType = "sos_alert"
	NotificationTypeAuthorityAlert NotificationType = "authority_alert"
)

// IsValid checks if the type is a known value.
func (t NotificationType) IsValid() bool {
	return t == NotificationTypeSOSAlert || t == NotificationTypeAuthorityAlert
}

// Notification is an alert produced by a distress submission.
type Notification struct {
	ID      uuid.UUID        `json:"id"`      // Time-ordered UUID of the notification.
	Type    NotificationType `json:"type"`    // sos_alert or authority_alert.
	BoatID  string           `json:"boat_id"` // Alerted boat, or the distressed boat for authority alerts.
	Lat     float64          `json:"lat"`     // Alerted boat position, or the distress point for authority alerts.
	Lng     float64          `json:"lng"`
	Time    time.Time        `json:"time"`
	Message string           `json:"message"`
	Seq     uint64           `json:"-"` // Store-assigned ordering key; higher is newer.
}
