package impl

import (
	"context"
	"log/slog"
	"strconv"

	"tidewise/config"
	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/constants"
	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
	"tidewise/internal/infra/metrics"
	"tidewise/internal/usecase"

	"go.uber.org/fx"
)

// Firebase multicast limit.
const firebaseBatchSize = 500

const (
	boatAlertTitle      = "🚨 SOS nearby"
	authorityAlertTitle = "🚨 SOS alert"
)

type alertRelayService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	metrics         *metrics.Metrics
	authorityTopic  string
	logger          *slog.Logger
}

// AlertRelayServiceParams holds dependencies for AlertRelayService, injected by Fx.
type AlertRelayServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Metrics         *metrics.Metrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAlertRelayService creates the worker-side push fan-out.
func NewAlertRelayService(params AlertRelayServiceParams) usecase.AlertRelayUsecase {
	topic := constants.AuthorityTopic
	if params.Config != nil && params.Config.Firebase != nil && params.Config.Firebase.AuthorityTopic != "" {
		topic = params.Config.Firebase.AuthorityTopic
	}

	return &alertRelayService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		metrics:         params.Metrics,
		authorityTopic:  topic,
		logger:          params.Logger,
	}
}

func (s *alertRelayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RelaySOSAlert pushes each boat alert to the devices registered on that boat
// and the authority message to the authority topic. Device lookups that fail
// are retryable; individual push failures are counted and dropped.
func (s *alertRelayService) RelaySOSAlert(ctx context.Context, event *service.SOSAlertEvent) (*usecase.RelayResult, error) {
	if event == nil || event.SOSID == "" {
		return nil, errors.New("sos alert event without id")
	}

	result := &usecase.RelayResult{}
	data := map[string]string{
		"sos_id":    event.SOSID,
		"boat_id":   event.BoatID,
		"latitude":  strconv.FormatFloat(event.Latitude, 'f', 4, 64),
		"longitude": strconv.FormatFloat(event.Longitude, 'f', 4, 64),
	}

	if len(event.Alerts) > 0 {
		tokensByBoat, err := s.tokensByBoat(ctx, event.Alerts)
		if err != nil {
			return nil, &usecase.RetryableError{Err: err}
		}

		var invalid []string
		for _, alert := range event.Alerts {
			tokens := tokensByBoat[alert.BoatID]
			if len(tokens) == 0 {
				continue
			}
			result.DevicesTargeted += len(tokens)

			alertData := withType(data, entity.NotificationTypeSOSAlert)
			sent, failed, bad := s.sendBatched(ctx, tokens, boatAlertTitle, alert.Message, alertData)
			result.Sent += sent
			result.Failed += failed
			invalid = append(invalid, bad...)
		}

		if len(invalid) > 0 {
			if err := s.deviceRepo.DeleteByTokens(ctx, invalid); err != nil {
				s.log(ctx).Warn("Failed to delete invalid devices", slog.Any("error", err))
			} else {
				result.InvalidRemoved = len(invalid)
			}
		}
	}

	if event.AuthorityMessage != "" {
		err := s.notificationSvc.SendTopicNotification(ctx, s.authorityTopic, authorityAlertTitle,
			event.AuthorityMessage, withType(data, entity.NotificationTypeAuthorityAlert))
		if err != nil {
			s.log(ctx).Error("Failed to notify authority topic",
				slog.String("sos_id", event.SOSID),
				slog.Any("error", err))
		} else {
			result.AuthorityNotified = true
		}
	}

	s.metrics.PushesSent.WithLabelValues("success").Add(float64(result.Sent))
	s.metrics.PushesSent.WithLabelValues("failure").Add(float64(result.Failed))
	s.log(ctx).Info("SOS alert relayed",
		slog.String("sos_id", event.SOSID),
		slog.Int("devices", result.DevicesTargeted),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_removed", result.InvalidRemoved),
		slog.Bool("authority_notified", result.AuthorityNotified))

	return result, nil
}

func (s *alertRelayService) tokensByBoat(ctx context.Context, alerts []service.BoatAlert) (map[string][]string, error) {
	boatIDs := make([]string, 0, len(alerts))
	for _, a := range alerts {
		boatIDs = append(boatIDs, a.BoatID)
	}

	devices, err := s.deviceRepo.FindByBoatIDs(ctx, boatIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	byBoat := make(map[string][]string, len(boatIDs))
	for _, d := range devices {
		byBoat[d.BoatID] = append(byBoat[d.BoatID], d.FCMToken)
	}

	return byBoat, nil
}

// sendBatched sends in chunks of firebaseBatchSize. A failed chunk counts
// every token in it as failed and the loop moves on.
func (s *alertRelayService) sendBatched(ctx context.Context, tokens []string, title, body string, data map[string]string) (sent, failed int, invalid []string) {
	for idx := 0; idx < len(tokens); idx += firebaseBatchSize {
		end := min(idx+firebaseBatchSize, len(tokens))
		batch := tokens[idx:end]

		ok, ko, bad, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.log(ctx).Error("Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err))
			failed += len(batch)

			continue
		}
		sent += ok
		failed += ko
		invalid = append(invalid, bad...)
	}

	return sent, failed, invalid
}

func withType(data map[string]string, typ entity.NotificationType) map[string]string {
	out := make(map[string]string, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out["type"] = string(typ)

	return out
}
