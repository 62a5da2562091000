package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access tokens.
// UserID mirrors the subject claim.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles"`
	BoatID string    `json:"boat_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates an access token for the user.
	GenerateAccessToken(userID uuid.UUID, roles []string, boatID string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
