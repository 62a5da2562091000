package handler

import (
	"net/http"

	"tidewise/internal/delivery/api/response"
	"tidewise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FleetHandlerParams holds dependencies for FleetHandler, injected by Fx.
type FleetHandlerParams struct {
	fx.In

	FleetUC usecase.FleetUsecase
}

// FleetHandler serves boat positions and the authority dashboard.
type FleetHandler struct {
	fleetUC usecase.FleetUsecase
}

// NewFleetHandler is the constructor for FleetHandler
func NewFleetHandler(params FleetHandlerParams) *FleetHandler {
	return &FleetHandler{fleetUC: params.FleetUC}
}

// PositionRequest carries a reported position. Pointers keep 0 distinguishable from missing.
type PositionRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// ListBoats handles GET /api/v1/boats
func (h *FleetHandler) ListBoats(c echo.Context) error {
	boats, err := h.fleetUC.SnapshotBoats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, boats)
}

// UpdatePosition handles PUT /api/v1/boats/:id/position.
// A fisherman may only move the boat bound to their token.
func (h *FleetHandler) UpdatePosition(c echo.Context) error {
	boatID := c.Param("id")
	if own := ownBoatID(c); own != "" && own != boatID {
		return response.Forbidden(c, "FORBIDDEN", "You can only report your own boat's position")
	}

	var req PositionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	boat, err := h.fleetUC.UpdatePosition(c.Request().Context(), boatID, *req.Lat, *req.Lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, boat)
}

// Stats handles GET /api/v1/authority/stats
func (h *FleetHandler) Stats(c echo.Context) error {
	stats, err := h.fleetUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
