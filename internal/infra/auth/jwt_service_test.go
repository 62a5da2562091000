package auth

import (
	"testing"
	"time"

	"tidewise/config"
	domainerrors "tidewise/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) (*jwtService, *clockwork.FakeClock) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.SecretKey.AccessTTL = time.Hour
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC))

	svc, err := NewJWTService(cfg, clock)
	require.NoError(t, err)

	return svc.(*jwtService), clock
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, clock := newTestJWTService(t)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateAccessToken(userID, []string{"fisherman"}, "F-001")
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"fisherman"}, claims.Roles)
	assert.Equal(t, "F-001", claims.BoatID)
}

func TestJWTService_Expired(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, _, err := svc.GenerateAccessToken(uuid.New(), []string{"authority"}, "A-001")
	require.NoError(t, err)

	clock.Advance(time.Hour + time.Second)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTService_Rejects(t *testing.T) {
	svc, clock := newTestJWTService(t)

	_, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	// Signed with another key.
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
	})
	forged, err := other.SignedString([]byte("another_secret_key_that_is_long_enough"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(forged)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	// Unsigned.
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: uuid.NewString()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(unsigned)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "short"
	cfg.SecretKey.AccessTTL = time.Hour

	_, err := NewJWTService(cfg, clockwork.NewRealClock())
	assert.Error(t, err)
}
