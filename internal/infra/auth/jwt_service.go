package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"tidewise/config"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/service"
)

const minSecretLength = 32

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	clock        clockwork.Clock
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock clockwork.Clock) (service.TokenService, error) {
	if len(cfg.SecretKey.Access) < minSecretLength {
		return nil, errors.Errorf("jwt access secret must be at least %d bytes", minSecretLength)
	}
	ttl := cfg.SecretKey.AccessTTL
	if ttl <= 0 {
		return nil, errors.New("jwt access ttl must be positive")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		clock:        clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// GenerateAccessToken signs an access token carrying the roles and boat of the user.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string, boatID string) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.accessTTL)

	claims := &service.Claims{
		Roles:  roles,
		BoatID: boatID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// ValidateToken parses and verifies tokenString. Every failure maps to ErrUnauthorized.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized.WithDetails(err.Error()), "failed to parse token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized.WithDetails("invalid subject"), "failed to parse token")
	}
	claims.UserID = userID

	return claims, nil
}
