package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "tidewise/internal/delivery/api/middleware"
	"tidewise/internal/delivery/api/response"
	"tidewise/internal/delivery/api/validator"
	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

type testRequest struct {
	method  string
	route   string // echo route pattern
	target  string // request URL
	body    string
	claims  *service.Claims
	headers map[string]string
}

// serve registers h on a fresh echo instance wired like the API server and
// performs one request against it.
func serve(t *testing.T, tr testRequest, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	withClaims := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tr.claims != nil {
				deliverycontext.SetClaims(c, tr.claims)
			}

			return next(c)
		}
	}
	e.Add(tr.method, tr.route, h, withClaims)

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range tr.headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func fishermanClaims(boatID string) *service.Claims {
	return &service.Claims{Roles: []string{"fisherman"}, BoatID: boatID}
}

func authorityClaims() *service.Claims {
	return &service.Claims{Roles: []string{"authority"}}
}
