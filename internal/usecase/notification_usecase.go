package usecase

import (
	"context"

	"tidewise/internal/domain/entity"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// NotificationUsecase exposes the pending notification list and push registration.
type NotificationUsecase interface {
	// SnapshotNotifications returns pending notifications newest first.
	// An empty filter returns every type.
	SnapshotNotifications(ctx context.Context, filter entity.NotificationType) ([]*entity.Notification, error)

	// ClearNotifications empties the list.
	ClearNotifications(ctx context.Context) error

	// RegisterDevice registers a handset aboard boatID for push alerts.
	RegisterDevice(ctx context.Context, boatID string, info *DeviceInfo) (*entity.BoatDevice, error)
}
