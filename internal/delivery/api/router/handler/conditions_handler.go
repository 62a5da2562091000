package handler

import (
	"net/http"

	"tidewise/internal/delivery/api/response"
	"tidewise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConditionsHandlerParams holds dependencies for ConditionsHandler, injected by Fx.
type ConditionsHandlerParams struct {
	fx.In

	ConditionsUC usecase.ConditionsUsecase
}

// ConditionsHandler serves weather, sea state and risk.
type ConditionsHandler struct {
	conditionsUC usecase.ConditionsUsecase
}

// NewConditionsHandler is the constructor for ConditionsHandler
func NewConditionsHandler(params ConditionsHandlerParams) *ConditionsHandler {
	return &ConditionsHandler{conditionsUC: params.ConditionsUC}
}

// AdvisoryRequest asks for a safety advisory at a position.
type AdvisoryRequest struct {
	Lat  *float64 `json:"lat" validate:"required"`
	Lng  *float64 `json:"lng" validate:"required"`
	Lang string   `json:"lang"`
}

// Current handles GET /api/v1/conditions?lat=&lng=
func (h *ConditionsHandler) Current(c echo.Context) error {
	lat, lng, err := bindPosition(c)
	if err != nil {
		return err
	}

	conditions, err := h.conditionsUC.CurrentConditions(c.Request().Context(), lat, lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conditions)
}

// HeatMap handles GET /api/v1/conditions/heatmap?lat=&lng=
func (h *ConditionsHandler) HeatMap(c echo.Context) error {
	lat, lng, err := bindPosition(c)
	if err != nil {
		return err
	}

	fc, err := h.conditionsUC.HeatMap(c.Request().Context(), lat, lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fc)
}

// Advisory handles POST /api/v1/conditions/advisory
func (h *ConditionsHandler) Advisory(c echo.Context) error {
	var req AdvisoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lang := req.Lang
	if lang == "" {
		lang = requestLang(c)
	}

	advisory, err := h.conditionsUC.Advisory(c.Request().Context(), *req.Lat, *req.Lng, lang)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, advisory)
}
