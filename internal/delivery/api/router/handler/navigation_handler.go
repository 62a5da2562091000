package handler

import (
	"net/http"

	"tidewise/internal/delivery/api/response"
	"tidewise/internal/domain/geo"
	"tidewise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
}

// NavigationHandler serves zones, harbors, geofence checks and route plans.
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{navigationUC: params.NavigationUC}
}

// RouteRequest asks for a passage plan.
type RouteRequest struct {
	Start       *geo.Coordinate `json:"start" validate:"required"`
	Destination *geo.Coordinate `json:"destination" validate:"required"`
	WindKnots   float64         `json:"wind_knots" validate:"gte=0"`
}

// Zones handles GET /api/v1/zones
func (h *NavigationHandler) Zones(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.navigationUC.Zones(c.Request().Context()))
}

// Harbors handles GET /api/v1/harbors
func (h *NavigationHandler) Harbors(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.navigationUC.Harbors(c.Request().Context()))
}

// CheckPosition handles GET /api/v1/zones/check?lat=&lng=&lang=
func (h *NavigationHandler) CheckPosition(c echo.Context) error {
	lat, lng, err := bindPosition(c)
	if err != nil {
		return err
	}

	check, err := h.navigationUC.CheckPosition(c.Request().Context(), lat, lng, requestLang(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, check)
}

// PlanRoute handles POST /api/v1/routes
func (h *NavigationHandler) PlanRoute(c echo.Context) error {
	var req RouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plan, err := h.navigationUC.PlanRoute(c.Request().Context(), *req.Start, *req.Destination, req.WindKnots)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}
