package impl

import (
	"context"
	"testing"

	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	mockRepo "tidewise/internal/mocks/repository"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return notificationServiceFixtures{
		service: NewNotificationService(NotificationServiceParams{
			NotificationRepo: notificationRepo,
			DeviceRepo:       deviceRepo,
			Clock:            clockwork.NewFakeClockAt(testNow),
			Logger:           newDiscardLogger(),
		}),
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
	}
}

func TestNotificationService_SnapshotNotifications(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	stored := []*entity.Notification{
		{ID: uuid.New(), Type: entity.NotificationTypeAuthorityAlert, BoatID: "127"},
		{ID: uuid.New(), Type: entity.NotificationTypeSOSAlert, BoatID: "089"},
		{ID: uuid.New(), Type: entity.NotificationTypeSOSAlert, BoatID: "203"},
	}
	fx.notificationRepo.EXPECT().FindAll(ctx).Return(stored, nil).Times(2)

	all, err := fx.service.SnapshotNotifications(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, stored, all)

	alerts, err := fx.service.SnapshotNotifications(ctx, entity.NotificationTypeSOSAlert)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "089", alerts[0].BoatID)
	assert.Equal(t, "203", alerts[1].BoatID)
}

func TestNotificationService_SnapshotNotifications_UnknownFilter(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.SnapshotNotifications(context.Background(), "broadcast")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_ClearNotifications(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().Clear(ctx).Return(nil).Once()
	require.NoError(t, fx.service.ClearNotifications(ctx))

	fx.notificationRepo.EXPECT().Clear(ctx).Return(errors.New("db down")).Once()
	assert.Error(t, fx.service.ClearNotifications(ctx))
}

func TestNotificationService_RegisterDevice_New(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	info := &usecase.DeviceInfo{FCMToken: "token-1", DeviceID: "phone-1", Platform: "android"}

	var registered *entity.BoatDevice
	fx.deviceRepo.EXPECT().
		Register(ctx, mock.AnythingOfType("*entity.BoatDevice")).
		Run(func(_ context.Context, d *entity.BoatDevice) { registered = d }).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindByBoatIDs(ctx, []string{"127"}).
		RunAndReturn(func(context.Context, []string) ([]*entity.BoatDevice, error) {
			return []*entity.BoatDevice{registered}, nil
		})

	device, err := fx.service.RegisterDevice(ctx, "127", info)
	require.NoError(t, err)
	assert.Equal(t, "127", device.BoatID)
	assert.Equal(t, "token-1", device.FCMToken)
	assert.Equal(t, "android", device.Platform)
	assert.Equal(t, testNow, device.CreatedAt)
}

func TestNotificationService_RegisterDevice_KeepsOriginalRegistration(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	original := &entity.BoatDevice{ID: uuid.New(), BoatID: "127", DeviceID: "phone-1", FCMToken: "token-2"}

	fx.deviceRepo.EXPECT().Register(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindByBoatIDs(ctx, []string{"127"}).Return([]*entity.BoatDevice{original}, nil)

	device, err := fx.service.RegisterDevice(ctx, "127", &usecase.DeviceInfo{FCMToken: "token-2", DeviceID: "phone-1"})
	require.NoError(t, err)
	assert.Equal(t, original.ID, device.ID)
}

func TestNotificationService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.RegisterDevice(context.Background(), "127", &usecase.DeviceInfo{DeviceID: "phone-1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterDevice(context.Background(), "", &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
