package repository

import (
	"context"

	"tidewise/internal/domain/entity"
)

// NotificationRepository is the pending notification list.
type NotificationRepository interface {
	// PrependBatch stores notifications given in creation order; each one becomes
	// newer than the previous, so the last element ends up at the head of the list.
	PrependBatch(ctx context.Context, notifications []*entity.Notification) error

	// FindAll returns pending notifications newest first.
	FindAll(ctx context.Context) ([]*entity.Notification, error)

	// Clear removes every pending notification.
	Clear(ctx context.Context) error
}
