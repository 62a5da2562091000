package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"tidewise/config"
	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/geo"
	"tidewise/internal/domain/repository"
	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
	"tidewise/internal/infra/metrics"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/fx"
)

// DefaultAlertRadiusMeters is used when the tracker config leaves the radius unset.
const DefaultAlertRadiusMeters = 10000.0

// authorityLocale is the TTS locale used for the control-room announcement.
const authorityLocale = "en-IN"

type distressService struct {
	txManager    repository.TransactionManager
	sosRepo      repository.SOSRepository
	boatRepo     repository.BoatRepository
	queue        repository.OfflineQueue
	publisher    service.EventPublisher
	probe        service.ConnectivityProbe
	announcer    service.Announcer
	qrcode       service.QRCodeService
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	radiusMeters float64
	logger       *slog.Logger
}

// DistressServiceParams holds dependencies for DistressService, injected by Fx.
type DistressServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SOSRepo   repository.SOSRepository
	BoatRepo  repository.BoatRepository
	Queue     repository.OfflineQueue
	Publisher service.EventPublisher
	Probe     service.ConnectivityProbe
	Announcer service.Announcer
	QRCode    service.QRCodeService
	Clock     clockwork.Clock
	Metrics   *metrics.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDistressService creates the proximity notifier.
func NewDistressService(params DistressServiceParams) usecase.DistressUsecase {
	radius := DefaultAlertRadiusMeters
	if params.Config != nil && params.Config.Tracker != nil && params.Config.Tracker.AlertRadiusMeters > 0 {
		radius = params.Config.Tracker.AlertRadiusMeters
	}

	return &distressService{
		txManager:    params.TxManager,
		sosRepo:      params.SOSRepo,
		boatRepo:     params.BoatRepo,
		queue:        params.Queue,
		publisher:    params.Publisher,
		probe:        params.Probe,
		announcer:    params.Announcer,
		qrcode:       params.QRCode,
		clock:        params.Clock,
		metrics:      params.Metrics,
		radiusMeters: radius,
		logger:       params.Logger,
	}
}

func (srv *distressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitDistress records an SOS, flags the boat and fans out alerts to every
// other boat inside the alert radius plus one authority alert.
func (srv *distressService) SubmitDistress(ctx context.Context, boatID string, lat, lng float64) (*entity.DistressReceipt, error) {
	if boatID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("boat id is required")
	}
	at := geo.Coordinate{Lat: lat, Lng: lng}
	if !at.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	now := srv.clock.Now()
	event := &entity.SOSEvent{
		ID:     uuid.Must(uuid.NewV7()),
		BoatID: boatID,
		Time:   now,
		Lat:    lat,
		Lng:    lng,
	}

	queued := !srv.probe.Online(ctx)

	var (
		notifications []*entity.Notification
		notified      []string
	)
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if !queued {
			if err := f.NewSOSRepository().Prepend(ctx, event); err != nil {
				return errors.Wrap(err, "failed to record sos")
			}
		}

		boatRepo := f.NewBoatRepository()
		if err := srv.flagBoat(ctx, boatRepo, event); err != nil {
			return err
		}

		boats, err := boatRepo.FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load boats")
		}

		var alerts []*entity.Notification
		alerts, notified = srv.scan(event, boats)
		notifications = append(alerts, srv.authorityAlert(event, len(alerts)))

		if err := f.NewNotificationRepository().PrependBatch(ctx, notifications); err != nil {
			return errors.Wrap(err, "failed to record notifications")
		}

		// Queued last so a failed step above never leaves a flushable event behind.
		if queued {
			if err := srv.queue.Push(ctx, event); err != nil {
				return errors.Wrap(err, "failed to queue offline sos")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit distress", slog.String("boat_id", boatID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to submit distress")
	}

	queueLabel := "live"
	if queued {
		queueLabel = "offline"
		srv.refreshQueueDepth(ctx)
	}
	srv.metrics.SOSSubmitted.WithLabelValues(queueLabel).Inc()
	for _, n := range notifications {
		srv.metrics.NotificationsCreated.WithLabelValues(string(n.Type)).Inc()
	}

	authority := notifications[len(notifications)-1]
	srv.log(ctx).Info("SOS raised",
		slog.String("boat_id", boatID),
		slog.String("sos_id", event.ID.String()),
		slog.Bool("queued", queued),
		slog.Int("notified_boats", len(notified)))

	if !queued {
		srv.publish(ctx, event, notifications)
	}
	if err := srv.announcer.Announce(ctx, authorityLocale, authority.Message); err != nil {
		srv.log(ctx).Warn("Failed to announce sos", slog.Any("error", err))
	}

	// Newest first, matching the notification list.
	newestFirst := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		newestFirst[len(notifications)-1-i] = n
	}

	return &entity.DistressReceipt{
		Event:         event,
		Queued:        queued,
		Notifications: newestFirst,
		NotifiedBoats: notified,
	}, nil
}

func (srv *distressService) flagBoat(ctx context.Context, boatRepo repository.BoatRepository, event *entity.SOSEvent) error {
	boat, err := boatRepo.FindByID(ctx, event.BoatID)
	switch {
	case errors.Is(err, repository.ErrBoatNotFound):
		boat = &entity.Boat{ID: event.BoatID, Zone: entity.ZoneFisherman}
	case err != nil:
		return errors.Wrap(err, "failed to find boat")
	}

	boat.Lat = event.Lat
	boat.Lng = event.Lng
	boat.Status = entity.BoatStatusSOS
	boat.UpdatedAt = event.Time

	if _, err := boatRepo.Upsert(ctx, boat); err != nil {
		return errors.Wrap(err, "failed to update boat")
	}

	return nil
}

type proximityHit struct {
	boat     *entity.Boat
	distance float64
	inRange  bool
}

// scan evaluates every boat except the distressed one. iter.Map keeps input
// order, so the result equals a sequential pass over the registry.
func (srv *distressService) scan(event *entity.SOSEvent, boats []*entity.Boat) ([]*entity.Notification, []string) {
	origin := event.Position()
	hits := iter.Map(boats, func(b **entity.Boat) proximityHit {
		boat := *b
		if boat.ID == event.BoatID {
			return proximityHit{}
		}
		d := geo.HaversineMeters(origin, boat.Position())

		return proximityHit{boat: boat, distance: d, inRange: d <= srv.radiusMeters}
	})

	var (
		alerts   []*entity.Notification
		notified []string
	)
	for _, hit := range hits {
		if !hit.inRange {
			continue
		}
		alerts = append(alerts, &entity.Notification{
			ID:      uuid.Must(uuid.NewV7()),
			Type:    entity.NotificationTypeSOSAlert,
			BoatID:  hit.boat.ID,
			Lat:     hit.boat.Lat,
			Lng:     hit.boat.Lng,
			Time:    event.Time,
			Message: SOSAlertMessage(event, hit.distance),
		})
		notified = append(notified, hit.boat.ID)
	}

	return alerts, notified
}

func (srv *distressService) authorityAlert(event *entity.SOSEvent, notified int) *entity.Notification {
	return &entity.Notification{
		ID:      uuid.Must(uuid.NewV7()),
		Type:    entity.NotificationTypeAuthorityAlert,
		BoatID:  event.BoatID,
		Lat:     event.Lat,
		Lng:     event.Lng,
		Time:    event.Time,
		Message: AuthorityAlertMessage(event, notified, srv.radiusMeters),
	}
}

// SOSAlertMessage is the text sent to a boat near a distress call.
func SOSAlertMessage(event *entity.SOSEvent, distanceMeters float64) string {
	return fmt.Sprintf("🚨 EMERGENCY SOS: Boat %s needs immediate assistance! Distance: %.1fkm away at %.4f°N, %.4f°E. Please respond immediately!",
		event.BoatID, distanceMeters/1000, event.Lat, event.Lng)
}

// AuthorityAlertMessage is the text sent to the coast authority.
func AuthorityAlertMessage(event *entity.SOSEvent, notified int, radiusMeters float64) string {
	return fmt.Sprintf("🚨 EMERGENCY SOS: Boat %s activated emergency signal at %.4f°N, %.4f°E. %d boats notified within %gkm radius. Immediate response required!",
		event.BoatID, event.Lat, event.Lng, notified, radiusMeters/1000)
}

func (srv *distressService) publish(ctx context.Context, event *entity.SOSEvent, notifications []*entity.Notification) {
	msg := &service.SOSAlertEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		SOSID:     event.ID.String(),
		BoatID:    event.BoatID,
		Latitude:  event.Lat,
		Longitude: event.Lng,
		Time:      event.Time,
	}
	for _, n := range notifications {
		switch n.Type {
		case entity.NotificationTypeSOSAlert:
			msg.Alerts = append(msg.Alerts, service.BoatAlert{BoatID: n.BoatID, Message: n.Message})
		case entity.NotificationTypeAuthorityAlert:
			msg.AuthorityMessage = n.Message
		}
	}

	if err := srv.publisher.PublishSOSAlert(ctx, msg); err != nil {
		srv.metrics.EventsPublished.WithLabelValues("error").Inc()
		srv.log(ctx).Warn("Failed to publish sos alert",
			slog.String("sos_id", msg.SOSID),
			slog.Any("error", err))

		return
	}
	srv.metrics.EventsPublished.WithLabelValues("success").Inc()
}

// NearbyDistress returns live SOS events within radiusMeters of (lat, lng), newest first.
func (srv *distressService) NearbyDistress(ctx context.Context, lat, lng, radiusMeters float64) ([]*entity.SOSEvent, error) {
	here := geo.Coordinate{Lat: lat, Lng: lng}
	if !here.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if math.IsNaN(radiusMeters) || radiusMeters < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be zero or positive")
	}

	events, err := srv.sosRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sos events")
	}

	nearby := make([]*entity.SOSEvent, 0, len(events))
	for _, e := range events {
		if geo.Within(here, e.Position(), radiusMeters) {
			nearby = append(nearby, e)
		}
	}

	return nearby, nil
}

// ListDistress returns every live SOS event, newest first.
func (srv *distressService) ListDistress(ctx context.Context) ([]*entity.SOSEvent, error) {
	events, err := srv.sosRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sos events")
	}

	return events, nil
}

// FlushOffline moves queued events in front of the live list and publishes them.
func (srv *distressService) FlushOffline(ctx context.Context) (int, error) {
	events, err := srv.queue.Drain(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to drain offline queue")
	}
	if len(events) == 0 {
		return 0, nil
	}

	var boats []*entity.Boat
	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewSOSRepository().PrependBatch(ctx, events); err != nil {
			return err
		}
		boats, err = f.NewBoatRepository().FindAll(ctx)

		return err
	})
	if err != nil {
		srv.requeue(ctx, events)
		return 0, errors.Wrap(err, "failed to flush offline queue")
	}
	srv.refreshQueueDepth(ctx)

	for _, e := range events {
		alerts, _ := srv.scan(e, boats)
		srv.publish(ctx, e, append(alerts, srv.authorityAlert(e, len(alerts))))
	}
	srv.log(ctx).Info("Flushed offline sos queue", slog.Int("count", len(events)))

	return len(events), nil
}

// requeue restores drained events oldest first so the queue keeps its order.
func (srv *distressService) requeue(ctx context.Context, events []*entity.SOSEvent) {
	for i := len(events) - 1; i >= 0; i-- {
		if err := srv.queue.Push(ctx, events[i]); err != nil {
			srv.log(ctx).Error("Failed to requeue sos event",
				slog.String("sos_id", events[i].ID.String()),
				slog.Any("error", err))
		}
	}
}

// OfflineQueueLength reports how many events wait for connectivity.
func (srv *distressService) OfflineQueueLength(ctx context.Context) (int, error) {
	n, err := srv.queue.Len(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read offline queue length")
	}

	return n, nil
}

func (srv *distressService) refreshQueueDepth(ctx context.Context) {
	if n, err := srv.queue.Len(ctx); err == nil {
		srv.metrics.OfflineQueueDepth.Set(float64(n))
	}
}

// DistressQRCode renders a PNG QR code a rescue crew can scan for the SOS position.
func (srv *distressService) DistressQRCode(ctx context.Context, sosID uuid.UUID) ([]byte, error) {
	event, err := srv.sosRepo.FindByID(ctx, sosID)
	if errors.Is(err, repository.ErrSOSNotFound) {
		return nil, domainerrors.ErrSOSNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sos event")
	}

	png, err := srv.qrcode.GenerateDistressQR(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate qr code")
	}

	return png, nil
}
