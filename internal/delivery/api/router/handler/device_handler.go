package handler

import (
	"net/http"

	"tidewise/internal/delivery/api/response"
	"tidewise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// DeviceHandler registers handsets for SOS push alerts.
type DeviceHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{notificationUC: params.NotificationUC}
}

// RegisterDeviceRequest represents the request body for registering a device.
// BoatID defaults to the boat bound to the caller's token.
type RegisterDeviceRequest struct {
	BoatID   string `json:"boat_id"`
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	boatID := req.BoatID
	if own := ownBoatID(c); own != "" {
		if boatID != "" && boatID != own {
			return response.Forbidden(c, "FORBIDDEN", "Devices can only be registered for your own boat")
		}
		boatID = own
	}
	if boatID == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "boat_id is required")
	}

	device, err := h.notificationUC.RegisterDevice(c.Request().Context(), boatID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}
