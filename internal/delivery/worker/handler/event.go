package handler

import (
	"encoding/json"

	"tidewise/internal/domain/service"
	"tidewise/internal/errors"

	"github.com/google/uuid"
)

// ErrMalformedEvent marks a payload that no redelivery can fix.
var ErrMalformedEvent = errors.New("malformed sos alert event")

// DecodeSOSAlertEvent parses and checks an SOS alert event payload.
func DecodeSOSAlertEvent(data []byte) (*service.SOSAlertEvent, error) {
	var event service.SOSAlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Join(ErrMalformedEvent, err)
	}

	if _, err := uuid.Parse(event.SOSID); err != nil {
		return nil, errors.Join(ErrMalformedEvent, errors.Wrapf(err, "sos_id %q", event.SOSID))
	}
	if event.BoatID == "" {
		return nil, errors.Join(ErrMalformedEvent, errors.New("boat_id is empty"))
	}

	return &event, nil
}
