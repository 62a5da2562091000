package usecase

import (
	"context"

	"tidewise/internal/domain/entity"
)

// FleetUsecase manages boat positions and the simulated fleet.
type FleetUsecase interface {
	// SnapshotBoats returns every boat in registration order.
	SnapshotBoats(ctx context.Context) ([]*entity.Boat, error)

	// UpdatePosition moves a boat, registering it as safe when unknown.
	UpdatePosition(ctx context.Context, boatID string, lat, lng float64) (*entity.Boat, error)

	// Tick advances the fleet simulation by one step.
	Tick(ctx context.Context) error

	// Stats summarises the fleet for the authority dashboard.
	Stats(ctx context.Context) (*entity.FleetStats, error)
}
