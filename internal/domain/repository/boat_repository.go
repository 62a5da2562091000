// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tidewise/internal/domain/entity"
	"tidewise/internal/errors"
)

// ErrBoatNotFound is returned when a boat id is unknown.
var ErrBoatNotFound = errors.New("boat not found")

// BoatRepository is the boat registry. Boats keep their registration order.
type BoatRepository interface {
	// FindAll returns every boat in registration order.
	FindAll(ctx context.Context) ([]*entity.Boat, error)

	// FindByID returns a single boat or ErrBoatNotFound.
	FindByID(ctx context.Context, id string) (*entity.Boat, error)

	// Upsert replaces the boat with the same id, or appends it when absent.
	// created reports whether the boat was new.
	Upsert(ctx context.Context, boat *entity.Boat) (created bool, err error)

	// SaveAll replaces the state of every listed boat in one call.
	SaveAll(ctx context.Context, boats []*entity.Boat) error

	// Count returns the number of registered boats.
	Count(ctx context.Context) (int, error)
}
