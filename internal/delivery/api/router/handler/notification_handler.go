package handler

import (
	"net/http"

	"tidewise/internal/delivery/api/response"
	"tidewise/internal/domain/entity"
	"tidewise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the pending notification list.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// List handles GET /api/v1/notifications?type=
func (h *NotificationHandler) List(c echo.Context) error {
	filter := entity.NotificationType(c.QueryParam("type"))
	if filter != "" && !filter.IsValid() {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed",
			"type must be sos_alert or authority_alert")
	}

	notifications, err := h.notificationUC.SnapshotNotifications(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// Clear handles DELETE /api/v1/notifications
func (h *NotificationHandler) Clear(c echo.Context) error {
	if err := h.notificationUC.ClearNotifications(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
