// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"tidewise/internal/domain/entity"

	"github.com/google/uuid"
)

// DistressUsecase is the proximity notifier and the SOS event list.
type DistressUsecase interface {
	// SubmitDistress records an SOS for boatID at (lat, lng), moves the boat to
	// status sos and alerts every other boat within the alert radius plus the authority.
	SubmitDistress(ctx context.Context, boatID string, lat, lng float64) (*entity.DistressReceipt, error)

	// NearbyDistress returns live SOS events within radiusMeters of (lat, lng), newest first.
	NearbyDistress(ctx context.Context, lat, lng, radiusMeters float64) ([]*entity.SOSEvent, error)

	// ListDistress returns every live SOS event, newest first.
	ListDistress(ctx context.Context) ([]*entity.SOSEvent, error)

	// FlushOffline moves queued events in front of the live list and returns how many moved.
	FlushOffline(ctx context.Context) (int, error)

	// OfflineQueueLength returns the number of events waiting for the uplink.
	OfflineQueueLength(ctx context.Context) (int, error)

	// DistressQRCode renders a QR code locating a live SOS event.
	DistressQRCode(ctx context.Context, sosID uuid.UUID) ([]byte, error)
}
