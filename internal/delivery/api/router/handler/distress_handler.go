package handler

import (
	"net/http"

	"tidewise/internal/delivery/api/response"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DistressHandlerParams holds dependencies for DistressHandler, injected by Fx.
type DistressHandlerParams struct {
	fx.In

	DistressUC usecase.DistressUsecase
}

// DistressHandler serves SOS submission and the SOS event list.
type DistressHandler struct {
	distressUC usecase.DistressUsecase
}

// NewDistressHandler is the constructor for DistressHandler
func NewDistressHandler(params DistressHandlerParams) *DistressHandler {
	return &DistressHandler{distressUC: params.DistressUC}
}

// SubmitDistressRequest represents an SOS. BoatID defaults to the caller's boat.
type SubmitDistressRequest struct {
	BoatID string   `json:"boat_id"`
	Lat    *float64 `json:"lat" validate:"required"`
	Lng    *float64 `json:"lng" validate:"required"`
}

// Submit handles POST /api/v1/sos.
// A fisherman may only raise an SOS for the boat bound to their token.
func (h *DistressHandler) Submit(c echo.Context) error {
	var req SubmitDistressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	own := ownBoatID(c)
	boatID := req.BoatID
	if boatID == "" {
		boatID = own
	}
	if own != "" && own != boatID {
		return response.Forbidden(c, "FORBIDDEN", "You can only raise an SOS for your own boat")
	}
	if boatID == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "boat_id is required")
	}

	receipt, err := h.distressUC.SubmitDistress(c.Request().Context(), boatID, *req.Lat, *req.Lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if receipt.Queued {
		status = http.StatusAccepted
	}

	return response.Success(c, status, receipt)
}

// List handles GET /api/v1/sos
func (h *DistressHandler) List(c echo.Context) error {
	events, err := h.distressUC.ListDistress(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// Nearby handles GET /api/v1/sos/nearby?lat=&lng=&radius=
func (h *DistressHandler) Nearby(c echo.Context) error {
	var lat, lng, radius float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		MustFloat64("radius", &radius).
		BindError()
	if err != nil {
		return queryError(err)
	}

	events, err := h.distressUC.NearbyDistress(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// Flush handles POST /api/v1/sos/flush
func (h *DistressHandler) Flush(c echo.Context) error {
	ctx := c.Request().Context()

	flushed, err := h.distressUC.FlushOffline(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	remaining, err := h.distressUC.OfflineQueueLength(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"flushed":   flushed,
		"remaining": remaining,
	})
}

// QRCode handles GET /api/v1/sos/:id/qr
func (h *DistressHandler) QRCode(c echo.Context) error {
	sosID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid SOS event ID")
	}

	png, err := h.distressUC.DistressQRCode(c.Request().Context(), sosID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
