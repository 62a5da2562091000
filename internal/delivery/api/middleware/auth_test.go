package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/service"
	mockService "tidewise/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService) {
	tokens := mockService.NewMockTokenService(t)

	return NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil))), tokens
}

func runAuth(m *AuthMiddleware, authHeader string, next echo.HandlerFunc, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/guarded", next, append([]echo.MiddlewareFunc{m.Authenticate}, extra...)...)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid token stores claims", func(t *testing.T) {
		m, tokens := newTestAuthMiddleware(t)
		claims := &service.Claims{Roles: []string{"fisherman"}, BoatID: "F-001"}
		tokens.EXPECT().ValidateToken("good").Return(claims, nil)

		var seen *service.Claims
		rec := runAuth(m, "Bearer good", func(c echo.Context) error {
			seen = deliverycontext.GetClaims(c)

			return okHandler(c)
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Same(t, claims, seen)
	})

	t.Run("missing header", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)

		rec := runAuth(m, "", okHandler)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)

		rec := runAuth(m, "Basic Zm9vOmJhcg==", okHandler)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		m, tokens := newTestAuthMiddleware(t)
		tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		rec := runAuth(m, "Bearer expired", okHandler)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, tokens := newTestAuthMiddleware(t)
	tokens.EXPECT().ValidateToken("fisher").Return(&service.Claims{Roles: []string{"fisherman"}}, nil)
	tokens.EXPECT().ValidateToken("coastguard").Return(&service.Claims{Roles: []string{"authority"}}, nil)

	rec := runAuth(m, "Bearer fisher", okHandler, m.RequireRole(entity.RoleAuthority))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = runAuth(m, "Bearer coastguard", okHandler, m.RequireRole(entity.RoleAuthority))
	assert.Equal(t, http.StatusOK, rec.Code)
}
