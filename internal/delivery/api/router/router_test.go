package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tidewise/config"
	"tidewise/internal/delivery/api/middleware"
	"tidewise/internal/delivery/api/router/handler"
	"tidewise/internal/domain/service"
	mockService "tidewise/internal/mocks/service"
	mockUsecase "tidewise/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	echo     *echo.Echo
	tokens   *mockService.MockTokenService
	distress *mockUsecase.MockDistressUsecase
	fleet    *mockUsecase.MockFleetUsecase
}

func newRouterFixture(t *testing.T) routerFixture {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("fisher").Return(&service.Claims{Roles: []string{"fisherman"}, BoatID: "F-001"}, nil).Maybe()
	tokens.EXPECT().ValidateToken("coastguard").Return(&service.Claims{Roles: []string{"authority"}}, nil).Maybe()

	distressUC := mockUsecase.NewMockDistressUsecase(t)
	fleetUC := mockUsecase.NewMockFleetUsecase(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)}),
		FleetHandler:        handler.NewFleetHandler(handler.FleetHandlerParams{FleetUC: fleetUC}),
		DistressHandler:     handler.NewDistressHandler(handler.DistressHandlerParams{DistressUC: distressUC}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: notificationUC}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{NotificationUC: notificationUC}),
		ConditionsHandler:   handler.NewConditionsHandler(handler.ConditionsHandlerParams{ConditionsUC: mockUsecase.NewMockConditionsUsecase(t)}),
		NavigationHandler:   handler.NewNavigationHandler(handler.NavigationHandlerParams{NavigationUC: mockUsecase.NewMockNavigationUsecase(t)}),
		VoiceHandler:        handler.NewVoiceHandler(handler.VoiceHandlerParams{VoiceUC: mockUsecase.NewMockVoiceUsecase(t)}),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil))),
		Config:              cfg,
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return routerFixture{echo: e, tokens: tokens, distress: distressUC, fleet: fleetUC}
}

func (f routerFixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)

	rec := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_APIRequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/boats", "").Code)

	f.fleet.EXPECT().SnapshotBoats(mock.Anything).Return(nil, nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/boats", "fisher").Code)
}

func TestRouter_AuthorityOnlyRoutes(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/sos/flush", "fisher").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/authority/stats", "fisher").Code)

	f.distress.EXPECT().FlushOffline(mock.Anything).Return(0, nil)
	f.distress.EXPECT().OfflineQueueLength(mock.Anything).Return(0, nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/v1/sos/flush", "coastguard").Code)
}
