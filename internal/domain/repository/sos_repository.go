package repository

import (
	"context"

	"tidewise/internal/domain/entity"
	"tidewise/internal/errors"

	"github.com/google/uuid"
)

// ErrSOSNotFound is returned when an SOS event id is unknown.
var ErrSOSNotFound = errors.New("sos event not found")

// SOSRepository is the live SOS event list.
type SOSRepository interface {
	// Prepend stores the event as the newest entry and assigns its Seq.
	Prepend(ctx context.Context, event *entity.SOSEvent) error

	// PrependBatch puts events, given newest-first, in front of the list
	// keeping their relative order.
	PrependBatch(ctx context.Context, events []*entity.SOSEvent) error

	// FindAll returns every live event, newest first.
	FindAll(ctx context.Context) ([]*entity.SOSEvent, error)

	// FindByID returns a single event or ErrSOSNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SOSEvent, error)
}
