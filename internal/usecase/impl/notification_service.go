package impl

import (
	"context"
	"log/slog"

	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/repository"
	"tidewise/internal/errors"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	clock            clockwork.Clock
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	Clock            clockwork.Clock
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		clock:            params.Clock,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SnapshotNotifications returns the notification list newest first, optionally
// restricted to one type. An empty filter returns everything.
func (s *notificationService) SnapshotNotifications(ctx context.Context, filter entity.NotificationType) ([]*entity.Notification, error) {
	if filter != "" && !filter.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown notification type: " + string(filter))
	}

	all, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}
	if filter == "" {
		return all, nil
	}

	filtered := make([]*entity.Notification, 0, len(all))
	for _, n := range all {
		if n.Type == filter {
			filtered = append(filtered, n)
		}
	}

	return filtered, nil
}

// ClearNotifications empties the notification list.
func (s *notificationService) ClearNotifications(ctx context.Context) error {
	if err := s.notificationRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear notifications")
	}
	s.log(ctx).Info("Notifications cleared")

	return nil
}

// RegisterDevice registers a handset for push alerts, replacing any earlier
// registration of the same device.
func (s *notificationService) RegisterDevice(ctx context.Context, boatID string, info *usecase.DeviceInfo) (*entity.BoatDevice, error) {
	if boatID == "" || info == nil || info.FCMToken == "" || info.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("boat id, fcm token and device id are required")
	}

	now := s.clock.Now()
	device := &entity.BoatDevice{
		ID:        uuid.New(),
		BoatID:    boatID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deviceRepo.Register(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	// Re-registration keeps the original ID and creation time.
	devices, err := s.deviceRepo.FindByBoatIDs(ctx, []string{boatID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registered device")
	}
	for _, d := range devices {
		if d.DeviceID == info.DeviceID {
			return d, nil
		}
	}

	return device, nil
}
