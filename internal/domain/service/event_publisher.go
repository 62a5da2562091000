package service

import (
	"context"
	"time"
)

// BoatAlert is one boat-level alert carried by an SOSAlertEvent.
type BoatAlert struct {
	BoatID  string `json:"boat_id"`
	Message string `json:"message"`
}

// SOSAlertEvent is published after a live distress submission commits.
// The alert worker turns it into push notifications.
type SOSAlertEvent struct {
	RequestID        string      `json:"request_id,omitempty"` // For distributed tracing
	SOSID            string      `json:"sos_id"`
	BoatID           string      `json:"boat_id"`
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	Time             time.Time   `json:"time"`
	Alerts           []BoatAlert `json:"alerts"`
	AuthorityMessage string      `json:"authority_message"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSOSAlert publishes a distress event for async push delivery
	PublishSOSAlert(ctx context.Context, event *SOSAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// PushEnvelope is the body of a Pub/Sub push request. Data holds the base64
// JSON of an SOSAlertEvent.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EventAttributes returns the message attributes used for filtering and tracing.
func (e *SOSAlertEvent) EventAttributes() map[string]string {
	attributes := map[string]string{
		"sos_id":  e.SOSID,
		"boat_id": e.BoatID,
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}
