package handler

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"tidewise/config"
	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/constants"
	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier checks the OIDC token on a push request.
type tokenVerifier func(req *http.Request, audience string) error

// PushHandler handles Pub/Sub push messages carrying SOS alert events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verify         tokenVerifier
	logger         *slog.Logger
	relayUC        usecase.AlertRelayUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	RelayUC usecase.AlertRelayUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		relayUC:        params.RelayUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Retryable failures answer 503 so Pub/Sub redelivers; anything else is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verify(c.Request(), h.expectedAudience(c.Request())); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg service.PushEnvelope
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := DecodeSOSAlertEvent(data)
	if err != nil {
		h.logger.Error("[Worker] Failed to parse SOS alert event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := extractRequestID(ctx, pushMsg.Message.Attributes, event)

	if err := Relay(ctx, h.relayUC, h.logger, requestID, event); err != nil {
		if usecase.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// Relay runs the relay use case under a request-scoped logger. The error is
// already logged; callers only need it to decide on redelivery.
func Relay(ctx context.Context, relayUC usecase.AlertRelayUsecase, logger *slog.Logger, requestID string, event *service.SOSAlertEvent) error {
	reqLogger := logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing SOS alert event",
		slog.String("sos_id", event.SOSID),
		slog.String("boat_id", event.BoatID),
		slog.Int("alert_count", len(event.Alerts)),
	)

	result, err := relayUC.RelaySOSAlert(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to relay SOS alert",
			slog.String("sos_id", event.SOSID),
			slog.Any("error", err),
			slog.Bool("retryable", usecase.IsRetryable(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] SOS alert relayed",
		slog.String("sos_id", event.SOSID),
		slog.Int("devices", result.DevicesTargeted),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_removed", result.InvalidRemoved),
		slog.Bool("authority_notified", result.AuthorityNotified),
	)

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.SOSAlertEvent) string {
	if requestID, ok := attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// expectedAudience is the configured push audience, or the URL of this endpoint.
func (h *PushHandler) expectedAudience(req *http.Request) string {
	if h.audience != "" {
		return h.audience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}

	return scheme + "://" + req.Host + req.URL.Path
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
