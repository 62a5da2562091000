package handler

import (
	"net/http"

	"tidewise/internal/delivery/api/response"
	"tidewise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VoiceHandlerParams holds dependencies for VoiceHandler, injected by Fx.
type VoiceHandlerParams struct {
	fx.In

	VoiceUC usecase.VoiceUsecase
}

// VoiceHandler serves localized alert phrases for client-side speech.
type VoiceHandler struct {
	voiceUC usecase.VoiceUsecase
}

// NewVoiceHandler is the constructor for VoiceHandler
func NewVoiceHandler(params VoiceHandlerParams) *VoiceHandler {
	return &VoiceHandler{voiceUC: params.VoiceUC}
}

// Phrase handles GET /api/v1/voice/:key?lang=
func (h *VoiceHandler) Phrase(c echo.Context) error {
	phrase, err := h.voiceUC.Phrase(c.Request().Context(), c.Param("key"), requestLang(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, phrase)
}
