package impl

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"tidewise/config"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/geo"
	"tidewise/internal/domain/repository"
	"tidewise/internal/domain/service"
	"tidewise/internal/infra/metrics"
	"tidewise/internal/infra/persistence/memory"
	"tidewise/internal/infra/queue"
	mockService "tidewise/internal/mocks/service"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// distressServiceFixtures holds all test dependencies for distress service tests.
type distressServiceFixtures struct {
	service   usecase.DistressUsecase
	store     *memory.Store
	queue     repository.OfflineQueue
	probe     *mockService.MockConnectivityProbe
	publisher *mockService.MockEventPublisher
	announcer *mockService.MockAnnouncer
	qrcode    *mockService.MockQRCodeService
	clock     *clockwork.FakeClock
	metrics   *metrics.Metrics
}

func createTestDistressService(t *testing.T, radiusMeters float64, boats ...*entity.Boat) distressServiceFixtures {
	store := memory.NewStore(boats...)
	fx := distressServiceFixtures{
		store:     store,
		queue:     queue.NewMemoryQueue(),
		probe:     mockService.NewMockConnectivityProbe(t),
		publisher: mockService.NewMockEventPublisher(t),
		announcer: mockService.NewMockAnnouncer(t),
		qrcode:    mockService.NewMockQRCodeService(t),
		clock:     clockwork.NewFakeClockAt(testNow),
		metrics:   metrics.NewMetricsForTesting(),
	}
	fx.announcer.EXPECT().Announce(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	fx.service = NewDistressService(DistressServiceParams{
		TxManager: memory.NewTransactionManager(store),
		SOSRepo:   memory.NewSOSRepository(store),
		BoatRepo:  memory.NewBoatRepository(store),
		Queue:     fx.queue,
		Publisher: fx.publisher,
		Probe:     fx.probe,
		Announcer: fx.announcer,
		QRCode:    fx.qrcode,
		Clock:     fx.clock,
		Metrics:   fx.metrics,
		Config:    &config.Config{Tracker: &config.TrackerConfig{AlertRadiusMeters: radiusMeters}},
		Logger:    newDiscardLogger(),
	})

	return fx
}

func (fx distressServiceFixtures) online() {
	fx.probe.EXPECT().Online(mock.Anything).Return(true).Maybe()
	fx.publisher.EXPECT().PublishSOSAlert(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (fx distressServiceFixtures) notifications(t *testing.T) []*entity.Notification {
	all, err := memory.NewNotificationRepository(fx.store).FindAll(context.Background())
	require.NoError(t, err)

	return all
}

func countType(ns []*entity.Notification, typ entity.NotificationType) int {
	n := 0
	for _, x := range ns {
		if x.Type == typ {
			n++
		}
	}

	return n
}

func TestDistressService_SubmitDistress_NotifiesBoatsInRange(t *testing.T) {
	fx := createTestDistressService(t, 0, coastBoats()...)
	ctx := context.Background()

	fx.probe.EXPECT().Online(ctx).Return(true)

	var published *service.SOSAlertEvent
	fx.publisher.EXPECT().
		PublishSOSAlert(ctx, mock.AnythingOfType("*service.SOSAlertEvent")).
		Run(func(_ context.Context, event *service.SOSAlertEvent) { published = event }).
		Return(nil)

	receipt, err := fx.service.SubmitDistress(ctx, "F-001", 16.45, 80.65)
	require.NoError(t, err)

	assert.False(t, receipt.Queued)
	assert.Equal(t, "F-001", receipt.Event.BoatID)
	assert.Equal(t, testNow, receipt.Event.Time)
	assert.Equal(t, uuid.Version(7), receipt.Event.ID.Version())
	assert.Equal(t, []string{"127", "089"}, receipt.NotifiedBoats)

	require.Len(t, receipt.Notifications, 3)
	authority := receipt.Notifications[0]
	assert.Equal(t, entity.NotificationTypeAuthorityAlert, authority.Type)
	assert.Equal(t, "F-001", authority.BoatID)
	assert.Equal(t, 16.45, authority.Lat)
	assert.Equal(t,
		"🚨 EMERGENCY SOS: Boat F-001 activated emergency signal at 16.4500°N, 80.6500°E. 2 boats notified within 10km radius. Immediate response required!",
		authority.Message)

	// Alerts carry the alerted boat's own position and the distress point in the text.
	alert127 := receipt.Notifications[2]
	assert.Equal(t, "127", alert127.BoatID)
	assert.Equal(t, 16.50, alert127.Lat)
	assert.Equal(t, 80.60, alert127.Lng)
	d := geo.HaversineMeters(geo.Coordinate{Lat: 16.45, Lng: 80.65}, geo.Coordinate{Lat: 16.50, Lng: 80.60})
	assert.Equal(t,
		fmt.Sprintf("🚨 EMERGENCY SOS: Boat F-001 needs immediate assistance! Distance: %.1fkm away at 16.4500°N, 80.6500°E. Please respond immediately!", d/1000),
		alert127.Message)
	assert.Equal(t, "089", receipt.Notifications[1].BoatID)

	stored := fx.notifications(t)
	require.Len(t, stored, 3)
	for i := range stored {
		assert.Equal(t, receipt.Notifications[i].ID, stored[i].ID)
	}

	boat, err := memory.NewBoatRepository(fx.store).FindByID(ctx, "F-001")
	require.NoError(t, err)
	assert.Equal(t, entity.BoatStatusSOS, boat.Status)
	assert.Equal(t, entity.ZoneFisherman, boat.Zone)

	events, err := fx.service.ListDistress(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, receipt.Event.ID, events[0].ID)

	require.NotNil(t, published)
	assert.Equal(t, receipt.Event.ID.String(), published.SOSID)
	assert.Len(t, published.Alerts, 2)
	assert.Equal(t, authority.Message, published.AuthorityMessage)

	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.SOSSubmitted.WithLabelValues("live")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(fx.metrics.NotificationsCreated.WithLabelValues("sos_alert")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.EventsPublished.WithLabelValues("success")), 0)
}

func TestDistressService_SubmitDistress_EmptyRegistryStillAlertsAuthority(t *testing.T) {
	fx := createTestDistressService(t, 0)
	fx.online()

	receipt, err := fx.service.SubmitDistress(context.Background(), "YOU", 15.9, 80.2)
	require.NoError(t, err)

	require.Len(t, receipt.Notifications, 1)
	assert.Equal(t, entity.NotificationTypeAuthorityAlert, receipt.Notifications[0].Type)
	assert.Contains(t, receipt.Notifications[0].Message, "0 boats notified")
	assert.Empty(t, receipt.NotifiedBoats)
}

func TestDistressService_SubmitDistress_OneAuthorityAlertPerCall(t *testing.T) {
	fx := createTestDistressService(t, 0, coastBoats()...)
	fx.online()
	ctx := context.Background()

	calls := []geo.Coordinate{{Lat: 16.45, Lng: 80.65}, {Lat: 16.50, Lng: 80.60}, {Lat: 10, Lng: 70}, {Lat: 16.55, Lng: 80.55}}
	for i, c := range calls {
		_, err := fx.service.SubmitDistress(ctx, fmt.Sprintf("X-%d", i), c.Lat, c.Lng)
		require.NoError(t, err)
	}

	assert.Equal(t, len(calls), countType(fx.notifications(t), entity.NotificationTypeAuthorityAlert))
}

func TestDistressService_SubmitDistress_EquatorBoundary(t *testing.T) {
	boats := []*entity.Boat{
		{ID: "origin", Lat: 0, Lng: 0, Status: entity.BoatStatusSafe},
		{ID: "far", Lat: 0, Lng: 0.09, Status: entity.BoatStatusSafe},
		{ID: "near", Lat: 0, Lng: 0.0899, Status: entity.BoatStatusSafe},
	}
	fx := createTestDistressService(t, 0, boats...)
	fx.online()

	// 0.09 deg of longitude on the equator is ~10,007.5 m, just outside 10 km;
	// 0.0899 deg is ~9,996.4 m, inside.
	require.InDelta(t, 10007.543, geo.HaversineMeters(geo.Coordinate{}, geo.Coordinate{Lng: 0.09}), 0.01)
	require.InDelta(t, 9996.424, geo.HaversineMeters(geo.Coordinate{}, geo.Coordinate{Lng: 0.0899}), 0.01)

	receipt, err := fx.service.SubmitDistress(context.Background(), "origin", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"near"}, receipt.NotifiedBoats)
}

func TestDistressService_SubmitDistress_RadiusBoundaryInclusive(t *testing.T) {
	distress := geo.Coordinate{Lat: 15.75, Lng: 80.35}
	target := geo.Coordinate{Lat: 15.80, Lng: 80.40}
	exact := geo.HaversineMeters(distress, target)

	tests := []struct {
		name     string
		radius   float64
		notified bool
	}{
		{"exactly on the boundary", exact, true},
		{"one ulp short", math.Nextafter(exact, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDistressService(t, tt.radius, &entity.Boat{ID: "edge", Lat: target.Lat, Lng: target.Lng, Status: entity.BoatStatusSafe})
			fx.online()

			receipt, err := fx.service.SubmitDistress(context.Background(), "caller", distress.Lat, distress.Lng)
			require.NoError(t, err)

			if tt.notified {
				assert.Equal(t, []string{"edge"}, receipt.NotifiedBoats)
			} else {
				assert.Empty(t, receipt.NotifiedBoats)
			}
		})
	}
}

func TestDistressService_SubmitDistress_NotifiedIffWithinRadius(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	boats := make([]*entity.Boat, 200)
	for i := range boats {
		boats[i] = &entity.Boat{
			ID:     fmt.Sprintf("B%03d", i),
			Lat:    16.5 + (rng.Float64()-0.5)*0.4,
			Lng:    80.6 + (rng.Float64()-0.5)*0.4,
			Status: entity.BoatStatusSafe,
		}
	}
	fx := createTestDistressService(t, 0, boats...)
	fx.online()

	distress := geo.Coordinate{Lat: 16.5, Lng: 80.6}
	receipt, err := fx.service.SubmitDistress(context.Background(), "caller", distress.Lat, distress.Lng)
	require.NoError(t, err)

	var want []string
	for _, b := range boats {
		if geo.HaversineMeters(b.Position(), distress) <= DefaultAlertRadiusMeters {
			want = append(want, b.ID)
		}
	}
	require.NotEmpty(t, want)
	assert.Equal(t, want, receipt.NotifiedBoats)
	assert.Equal(t, len(want), countType(receipt.Notifications, entity.NotificationTypeSOSAlert))
}

func TestDistressService_SubmitDistress_UpdatesExistingBoatWithoutSelfAlert(t *testing.T) {
	fx := createTestDistressService(t, 0, coastBoats()...)
	fx.online()
	ctx := context.Background()

	receipt, err := fx.service.SubmitDistress(ctx, "203", 16.61, 80.51)
	require.NoError(t, err)
	assert.NotContains(t, receipt.NotifiedBoats, "203")

	boats, err := memory.NewBoatRepository(fx.store).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, boats, 3)
	assert.Equal(t, "203", boats[2].ID)
	assert.Equal(t, entity.BoatStatusSOS, boats[2].Status)
	assert.Equal(t, "C", boats[2].Zone)
	assert.Equal(t, 16.61, boats[2].Lat)
}

func TestDistressService_SubmitDistress_InvalidInput(t *testing.T) {
	fx := createTestDistressService(t, 0)

	_, err := fx.service.SubmitDistress(context.Background(), "127", 95, 80)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = fx.service.SubmitDistress(context.Background(), "127", math.NaN(), 80)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = fx.service.SubmitDistress(context.Background(), "", 16, 80)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDistressService_SubmitDistress_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestDistressService(t, 0)
	fx.probe.EXPECT().Online(mock.Anything).Return(true)
	fx.publisher.EXPECT().PublishSOSAlert(mock.Anything, mock.Anything).Return(errors.New("pubsub down"))

	_, err := fx.service.SubmitDistress(context.Background(), "127", 16.5, 80.6)
	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.EventsPublished.WithLabelValues("error")), 0)
}

func TestDistressService_OfflineQueueAndFlush(t *testing.T) {
	fx := createTestDistressService(t, 0, coastBoats()...)
	ctx := context.Background()

	fx.probe.EXPECT().Online(ctx).Return(true).Once()
	fx.publisher.EXPECT().PublishSOSAlert(ctx, mock.Anything).Return(nil)

	live, err := fx.service.SubmitDistress(ctx, "127", 16.50, 80.60)
	require.NoError(t, err)

	fx.probe.EXPECT().Online(ctx).Return(false).Times(2)
	first, err := fx.service.SubmitDistress(ctx, "089", 16.40, 80.70)
	require.NoError(t, err)
	fx.clock.Advance(1)
	second, err := fx.service.SubmitDistress(ctx, "203", 16.60, 80.50)
	require.NoError(t, err)

	assert.True(t, first.Queued)
	assert.True(t, second.Queued)
	// Queued submissions still flag the boat and create notifications.
	assert.Len(t, second.Notifications, 1)

	events, err := fx.service.ListDistress(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	n, err := fx.service.OfflineQueueLength(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 2, testutil.ToFloat64(fx.metrics.OfflineQueueDepth), 0)

	flushed, err := fx.service.FlushOffline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, flushed)

	events, err = fx.service.ListDistress(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, second.Event.ID, events[0].ID)
	assert.Equal(t, first.Event.ID, events[1].ID)
	assert.Equal(t, live.Event.ID, events[2].ID)

	n, err = fx.service.OfflineQueueLength(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	flushed, err = fx.service.FlushOffline(ctx)
	require.NoError(t, err)
	assert.Zero(t, flushed)

	fx.publisher.AssertNumberOfCalls(t, "PublishSOSAlert", 3)
}

func TestDistressService_NearbyDistress(t *testing.T) {
	fx := createTestDistressService(t, 0)
	fx.online()
	ctx := context.Background()

	exact, err := fx.service.SubmitDistress(ctx, "a", 16.5, 80.6)
	require.NoError(t, err)
	_, err = fx.service.SubmitDistress(ctx, "b", 16.5001, 80.6)
	require.NoError(t, err)
	farther, err := fx.service.SubmitDistress(ctx, "c", 16.52, 80.6)
	require.NoError(t, err)

	got, err := fx.service.NearbyDistress(ctx, 16.5, 80.6, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, exact.Event.ID, got[0].ID)

	got, err = fx.service.NearbyDistress(ctx, 16.5, 80.6, 5000)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, farther.Event.ID, got[0].ID)

	_, err = fx.service.NearbyDistress(ctx, 16.5, 80.6, -1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.NearbyDistress(ctx, 16.5, 200, 10)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestDistressService_ClearThenSubmit(t *testing.T) {
	fx := createTestDistressService(t, 0, coastBoats()...)
	fx.online()
	ctx := context.Background()

	_, err := fx.service.SubmitDistress(ctx, "F-001", 16.45, 80.65)
	require.NoError(t, err)
	require.Len(t, fx.notifications(t), 3)

	require.NoError(t, memory.NewNotificationRepository(fx.store).Clear(ctx))
	assert.Empty(t, fx.notifications(t))

	_, err = fx.service.SubmitDistress(ctx, "F-002", 16.60, 80.50)
	require.NoError(t, err)

	all := fx.notifications(t)
	require.NotEmpty(t, all)
	assert.Equal(t, entity.NotificationTypeAuthorityAlert, all[0].Type)
	assert.Equal(t, "F-002", all[0].BoatID)
}

func TestDistressService_NotificationsNewestFirstAcrossBatchSizes(t *testing.T) {
	fx := createTestDistressService(t, 0, coastBoats()...)
	fx.online()
	ctx := context.Background()

	// Same instant for every call: ordering must not depend on timestamps.
	points := []geo.Coordinate{{Lat: 16.45, Lng: 80.65}, {Lat: 5, Lng: 5}, {Lat: 16.50, Lng: 80.60}, {Lat: 16.45, Lng: 80.65}}
	var lastAuthority uuid.UUID
	for i, p := range points {
		receipt, err := fx.service.SubmitDistress(ctx, fmt.Sprintf("S-%d", i), p.Lat, p.Lng)
		require.NoError(t, err)
		lastAuthority = receipt.Notifications[0].ID
	}

	all := fx.notifications(t)
	require.NotEmpty(t, all)
	assert.Equal(t, lastAuthority, all[0].ID)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].Seq, all[i].Seq)
	}
}

func TestDistressService_DistressQRCode(t *testing.T) {
	fx := createTestDistressService(t, 0)
	fx.online()
	ctx := context.Background()

	receipt, err := fx.service.SubmitDistress(ctx, "127", 16.5, 80.6)
	require.NoError(t, err)

	fx.qrcode.EXPECT().
		GenerateDistressQR(mock.MatchedBy(func(e *entity.SOSEvent) bool { return e.ID == receipt.Event.ID })).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.DistressQRCode(ctx, receipt.Event.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = fx.service.DistressQRCode(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSOSNotFound)
}
