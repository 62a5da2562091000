package impl

import (
	"context"
	"testing"

	"tidewise/config"
	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
	"tidewise/internal/infra/metrics"
	mockRepo "tidewise/internal/mocks/repository"
	mockService "tidewise/internal/mocks/service"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// distressTxFixtures drives the distress use case through mocked storage so
// failures inside the transaction can be injected.
type distressTxFixtures struct {
	service   usecase.DistressUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	boats     *mockRepo.MockBoatRepository
	queue     *mockRepo.MockOfflineQueue
	probe     *mockService.MockConnectivityProbe
	publisher *mockService.MockEventPublisher
}

func createTestDistressTxService(t *testing.T) distressTxFixtures {
	fx := distressTxFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		boats:     mockRepo.NewMockBoatRepository(t),
		queue:     mockRepo.NewMockOfflineQueue(t),
		probe:     mockService.NewMockConnectivityProbe(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	announcer := mockService.NewMockAnnouncer(t)
	announcer.EXPECT().Announce(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).Maybe()
	fx.factory.EXPECT().NewBoatRepository().Return(fx.boats).Maybe()

	fx.service = NewDistressService(DistressServiceParams{
		TxManager: fx.txManager,
		SOSRepo:   mockRepo.NewMockSOSRepository(t),
		BoatRepo:  fx.boats,
		Queue:     fx.queue,
		Publisher: fx.publisher,
		Probe:     fx.probe,
		Announcer: announcer,
		QRCode:    mockService.NewMockQRCodeService(t),
		Clock:     clockwork.NewFakeClockAt(testNow),
		Metrics:   metrics.NewMetricsForTesting(),
		Config:    &config.Config{Tracker: &config.TrackerConfig{AlertRadiusMeters: 10000}},
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestDistressService_SubmitDistress_OfflineFailureLeavesQueueEmpty(t *testing.T) {
	fx := createTestDistressTxService(t)
	ctx := context.Background()

	fx.probe.EXPECT().Online(ctx).Return(false)
	fx.boats.EXPECT().FindByID(ctx, "127").Return(nil, errors.New("db down"))

	_, err := fx.service.SubmitDistress(ctx, "127", 16.5, 80.6)
	require.Error(t, err)

	fx.queue.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestDistressService_SubmitDistress_OfflineQueueFailureFailsSubmit(t *testing.T) {
	fx := createTestDistressTxService(t)
	ctx := context.Background()
	notifications := mockRepo.NewMockNotificationRepository(t)

	fx.probe.EXPECT().Online(ctx).Return(false)
	fx.boats.EXPECT().FindByID(ctx, "127").Return(nil, repository.ErrBoatNotFound)
	fx.boats.EXPECT().Upsert(ctx, mock.Anything).Return(true, nil)
	fx.boats.EXPECT().FindAll(ctx).Return(nil, nil)
	fx.factory.EXPECT().NewNotificationRepository().Return(notifications)
	notifications.EXPECT().PrependBatch(ctx, mock.Anything).Return(nil)
	fx.queue.EXPECT().Push(ctx, mock.MatchedBy(func(e *entity.SOSEvent) bool {
		return e.BoatID == "127"
	})).Return(errors.New("disk full"))

	_, err := fx.service.SubmitDistress(ctx, "127", 16.5, 80.6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to queue offline sos")

	fx.queue.AssertNotCalled(t, "Len", mock.Anything)
}

func TestDistressService_SubmitDistress_CancelledWhileOffline(t *testing.T) {
	fx := createTestDistressService(t, 0, coastBoats()...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.probe.EXPECT().Online(mock.Anything).Return(false)

	_, err := fx.service.SubmitDistress(ctx, "127", 16.5, 80.6)
	require.ErrorIs(t, err, context.Canceled)

	n, err := fx.service.OfflineQueueLength(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	flushed, err := fx.service.FlushOffline(context.Background())
	require.NoError(t, err)
	assert.Zero(t, flushed)

	events, err := fx.service.ListDistress(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDistressService_FlushOffline_RequeuesOnFailure(t *testing.T) {
	fx := createTestDistressTxService(t)
	ctx := context.Background()
	sos := mockRepo.NewMockSOSRepository(t)

	newer := &entity.SOSEvent{ID: uuid.Must(uuid.NewV7()), BoatID: "089", Time: testNow.Add(1)}
	older := &entity.SOSEvent{ID: uuid.Must(uuid.NewV7()), BoatID: "203", Time: testNow}

	fx.queue.EXPECT().Drain(ctx).Return([]*entity.SOSEvent{newer, older}, nil)
	fx.factory.EXPECT().NewSOSRepository().Return(sos)
	sos.EXPECT().PrependBatch(ctx, mock.Anything).Return(errors.New("db down"))

	var requeued []string
	fx.queue.EXPECT().Push(ctx, mock.Anything).
		Run(func(_ context.Context, e *entity.SOSEvent) { requeued = append(requeued, e.BoatID) }).
		Return(nil).Times(2)

	flushed, err := fx.service.FlushOffline(ctx)
	require.Error(t, err)
	assert.Zero(t, flushed)
	assert.Equal(t, []string{"203", "089"}, requeued, "oldest is pushed first so the queue order is restored")
	fx.publisher.AssertNotCalled(t, "PublishSOSAlert", mock.Anything, mock.Anything)
}
