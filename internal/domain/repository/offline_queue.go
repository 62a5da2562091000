package repository

import (
	"context"

	"tidewise/internal/domain/entity"
)

// OfflineQueue holds SOS events raised while the uplink was down.
// Implementations must survive a process restart unless they are test doubles.
type OfflineQueue interface {
	// Push adds the event as the newest queued entry.
	Push(ctx context.Context, event *entity.SOSEvent) error

	// Drain removes and returns every queued event, newest first.
	Drain(ctx context.Context) ([]*entity.SOSEvent, error)

	// Len returns the number of queued events.
	Len(ctx context.Context) (int, error)
}
