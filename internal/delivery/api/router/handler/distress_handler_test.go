package handler

import (
	"net/http"
	"testing"
	"time"

	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	mockUsecase "tidewise/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSOSID = uuid.MustParse("0195a3c4-1d2e-7000-8000-00000000abcd")

func testReceipt(queued bool) *entity.DistressReceipt {
	return &entity.DistressReceipt{
		Event: &entity.SOSEvent{
			ID:     testSOSID,
			BoatID: "F-001",
			Time:   time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC),
			Lat:    16.5,
			Lng:    80.6,
		},
		Queued:        queued,
		NotifiedBoats: []string{"127"},
	}
}

func TestDistressHandler_Submit(t *testing.T) {
	t.Run("defaults to the caller's boat", func(t *testing.T) {
		distressUC := mockUsecase.NewMockDistressUsecase(t)
		h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
		distressUC.EXPECT().SubmitDistress(mock.Anything, "F-001", 16.5, 80.6).Return(testReceipt(false), nil)

		rec := serve(t, testRequest{
			method: http.MethodPost, route: "/sos", target: "/sos",
			body: `{"lat":16.5,"lng":80.6}`, claims: fishermanClaims("F-001"),
		}, h.Submit)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"notified_boats":["127"]`)
	})

	t.Run("offline submission is accepted", func(t *testing.T) {
		distressUC := mockUsecase.NewMockDistressUsecase(t)
		h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
		distressUC.EXPECT().SubmitDistress(mock.Anything, "127", 16.5, 80.6).Return(testReceipt(true), nil)

		rec := serve(t, testRequest{
			method: http.MethodPost, route: "/sos", target: "/sos",
			body: `{"boat_id":"127","lat":16.5,"lng":80.6}`, claims: authorityClaims(),
		}, h.Submit)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), `"queued":true`)
	})

	t.Run("fisherman cannot raise sos for another boat", func(t *testing.T) {
		h := NewDistressHandler(DistressHandlerParams{DistressUC: mockUsecase.NewMockDistressUsecase(t)})

		rec := serve(t, testRequest{
			method: http.MethodPost, route: "/sos", target: "/sos",
			body: `{"boat_id":"127","lat":16.5,"lng":80.6}`, claims: fishermanClaims("F-001"),
		}, h.Submit)
		require.Equal(t, http.StatusForbidden, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("fisherman may name their own boat", func(t *testing.T) {
		distressUC := mockUsecase.NewMockDistressUsecase(t)
		h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
		distressUC.EXPECT().SubmitDistress(mock.Anything, "F-001", 16.5, 80.6).Return(testReceipt(false), nil)

		rec := serve(t, testRequest{
			method: http.MethodPost, route: "/sos", target: "/sos",
			body: `{"boat_id":"F-001","lat":16.5,"lng":80.6}`, claims: fishermanClaims("F-001"),
		}, h.Submit)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("no boat to report for", func(t *testing.T) {
		h := NewDistressHandler(DistressHandlerParams{DistressUC: mockUsecase.NewMockDistressUsecase(t)})

		rec := serve(t, testRequest{
			method: http.MethodPost, route: "/sos", target: "/sos",
			body: `{"lat":16.5,"lng":80.6}`, claims: authorityClaims(),
		}, h.Submit)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		h := NewDistressHandler(DistressHandlerParams{DistressUC: mockUsecase.NewMockDistressUsecase(t)})

		rec := serve(t, testRequest{
			method: http.MethodPost, route: "/sos", target: "/sos",
			body: `{"boat_id":"127"}`, claims: authorityClaims(),
		}, h.Submit)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDistressHandler_Nearby(t *testing.T) {
	distressUC := mockUsecase.NewMockDistressUsecase(t)
	h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
	distressUC.EXPECT().NearbyDistress(mock.Anything, 0.0, 0.0, 0.0).Return([]*entity.SOSEvent{testReceipt(false).Event}, nil)

	rec := serve(t, testRequest{
		method: http.MethodGet, route: "/sos/nearby", target: "/sos/nearby?lat=0&lng=0&radius=0",
	}, h.Nearby)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testSOSID.String())

	rec = serve(t, testRequest{
		method: http.MethodGet, route: "/sos/nearby", target: "/sos/nearby?lat=0&lng=0",
	}, h.Nearby)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "invalid query parameter radius", env.Error.Details)
}

func TestDistressHandler_List(t *testing.T) {
	distressUC := mockUsecase.NewMockDistressUsecase(t)
	h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
	distressUC.EXPECT().ListDistress(mock.Anything).Return([]*entity.SOSEvent{}, nil)

	rec := serve(t, testRequest{method: http.MethodGet, route: "/sos", target: "/sos"}, h.List)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestDistressHandler_Flush(t *testing.T) {
	distressUC := mockUsecase.NewMockDistressUsecase(t)
	h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
	distressUC.EXPECT().FlushOffline(mock.Anything).Return(2, nil)
	distressUC.EXPECT().OfflineQueueLength(mock.Anything).Return(0, nil)

	rec := serve(t, testRequest{method: http.MethodPost, route: "/sos/flush", target: "/sos/flush"}, h.Flush)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"flushed":2,"remaining":0}`, string(decodeEnvelope(t, rec).Data))
}

func TestDistressHandler_QRCode(t *testing.T) {
	t.Run("renders png", func(t *testing.T) {
		distressUC := mockUsecase.NewMockDistressUsecase(t)
		h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
		distressUC.EXPECT().DistressQRCode(mock.Anything, testSOSID).Return([]byte("\x89PNG"), nil)

		rec := serve(t, testRequest{
			method: http.MethodGet, route: "/sos/:id/qr", target: "/sos/" + testSOSID.String() + "/qr",
		}, h.QRCode)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})

	t.Run("unknown event", func(t *testing.T) {
		distressUC := mockUsecase.NewMockDistressUsecase(t)
		h := NewDistressHandler(DistressHandlerParams{DistressUC: distressUC})
		distressUC.EXPECT().DistressQRCode(mock.Anything, testSOSID).Return(nil, domainerrors.ErrSOSNotFound)

		rec := serve(t, testRequest{
			method: http.MethodGet, route: "/sos/:id/qr", target: "/sos/" + testSOSID.String() + "/qr",
		}, h.QRCode)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewDistressHandler(DistressHandlerParams{DistressUC: mockUsecase.NewMockDistressUsecase(t)})

		rec := serve(t, testRequest{method: http.MethodGet, route: "/sos/:id/qr", target: "/sos/abc/qr"}, h.QRCode)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
