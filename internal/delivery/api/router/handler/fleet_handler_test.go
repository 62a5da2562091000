package handler

import (
	"net/http"
	"strings"
	"testing"

	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	mockUsecase "tidewise/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFleetHandler_ListBoats(t *testing.T) {
	fleetUC := mockUsecase.NewMockFleetUsecase(t)
	h := NewFleetHandler(FleetHandlerParams{FleetUC: fleetUC})

	fleetUC.EXPECT().SnapshotBoats(mock.Anything).Return([]*entity.Boat{
		{ID: "127", Lat: 16.5, Lng: 80.6, Status: entity.BoatStatusSafe, Zone: "Machilipatnam"},
		{ID: "F-001", Lat: 16.4, Lng: 80.5, Status: entity.BoatStatusSOS},
	}, nil)

	rec := serve(t, testRequest{method: http.MethodGet, route: "/boats", target: "/boats"}, h.ListBoats)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Less(t, strings.Index(body, `"id":"127"`), strings.Index(body, `"id":"F-001"`))
	assert.Contains(t, body, `"status":"sos"`)
}

func TestFleetHandler_UpdatePosition(t *testing.T) {
	t.Run("own boat", func(t *testing.T) {
		fleetUC := mockUsecase.NewMockFleetUsecase(t)
		h := NewFleetHandler(FleetHandlerParams{FleetUC: fleetUC})
		fleetUC.EXPECT().UpdatePosition(mock.Anything, "F-001", 0.0, 80.25).
			Return(&entity.Boat{ID: "F-001", Lat: 0, Lng: 80.25, Status: entity.BoatStatusSafe}, nil)

		rec := serve(t, testRequest{
			method: http.MethodPut, route: "/boats/:id/position", target: "/boats/F-001/position",
			body: `{"lat":0,"lng":80.25}`, claims: fishermanClaims("F-001"),
		}, h.UpdatePosition)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("someone else's boat", func(t *testing.T) {
		h := NewFleetHandler(FleetHandlerParams{FleetUC: mockUsecase.NewMockFleetUsecase(t)})

		rec := serve(t, testRequest{
			method: http.MethodPut, route: "/boats/:id/position", target: "/boats/127/position",
			body: `{"lat":16,"lng":80}`, claims: fishermanClaims("F-001"),
		}, h.UpdatePosition)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing longitude", func(t *testing.T) {
		h := NewFleetHandler(FleetHandlerParams{FleetUC: mockUsecase.NewMockFleetUsecase(t)})

		rec := serve(t, testRequest{
			method: http.MethodPut, route: "/boats/:id/position", target: "/boats/127/position",
			body: `{"lat":16}`, claims: authorityClaims(),
		}, h.UpdatePosition)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("out of range coordinate", func(t *testing.T) {
		fleetUC := mockUsecase.NewMockFleetUsecase(t)
		h := NewFleetHandler(FleetHandlerParams{FleetUC: fleetUC})
		fleetUC.EXPECT().UpdatePosition(mock.Anything, "127", 91.0, 80.0).Return(nil, domainerrors.ErrInvalidCoordinate)

		rec := serve(t, testRequest{
			method: http.MethodPut, route: "/boats/:id/position", target: "/boats/127/position",
			body: `{"lat":91,"lng":80}`, claims: authorityClaims(),
		}, h.UpdatePosition)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_COORDINATE", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestFleetHandler_Stats(t *testing.T) {
	fleetUC := mockUsecase.NewMockFleetUsecase(t)
	h := NewFleetHandler(FleetHandlerParams{FleetUC: fleetUC})
	fleetUC.EXPECT().Stats(mock.Anything).Return(&entity.FleetStats{
		TotalBoats:   5,
		ByStatus:     map[entity.BoatStatus]int{entity.BoatStatusSafe: 4, entity.BoatStatusSOS: 1},
		ActiveAlerts: 3,
	}, nil)

	rec := serve(t, testRequest{method: http.MethodGet, route: "/stats", target: "/stats", claims: authorityClaims()}, h.Stats)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_boats":5`)
	assert.Contains(t, rec.Body.String(), `"sos":1`)
}
