package repository

import (
	"context"

	"tidewise/internal/domain/entity"
)

// DeviceRepository defines the operations on handsets registered for push alerts.
type DeviceRepository interface {
	// Register stores the device, replacing any device with the same DeviceID.
	Register(ctx context.Context, device *entity.BoatDevice) error

	// FindByBoatIDs returns the devices aboard any of the given boats.
	FindByBoatIDs(ctx context.Context, boatIDs []string) ([]*entity.BoatDevice, error)

	// DeleteByTokens removes devices whose FCM tokens are no longer valid.
	DeleteByTokens(ctx context.Context, tokens []string) error
}
