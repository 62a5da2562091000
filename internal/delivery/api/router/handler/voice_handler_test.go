package handler

import (
	"net/http"
	"testing"

	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	mockUsecase "tidewise/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVoiceHandler_Phrase(t *testing.T) {
	voiceUC := mockUsecase.NewMockVoiceUsecase(t)
	h := NewVoiceHandler(VoiceHandlerParams{VoiceUC: voiceUC})

	voiceUC.EXPECT().Phrase(mock.Anything, entity.PhraseSOSReceived, "ta").
		Return(&entity.VoicePhrase{Key: entity.PhraseSOSReceived, Language: "ta", Locale: "ta-IN", Text: "SOS பெறப்பட்டது"}, nil)
	voiceUC.EXPECT().Phrase(mock.Anything, "sing_shanty", "").Return(nil, domainerrors.ErrVoicePhraseNotFound)

	rec := serve(t, testRequest{
		method: http.MethodGet, route: "/voice/:key", target: "/voice/sos_received",
		headers: map[string]string{"Accept-Language": "ta"},
	}, h.Phrase)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"locale":"ta-IN"`)

	rec = serve(t, testRequest{method: http.MethodGet, route: "/voice/:key", target: "/voice/sing_shanty"}, h.Phrase)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
