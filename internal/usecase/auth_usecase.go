package usecase

import (
	"context"
	"time"

	"tidewise/internal/domain/entity"
)

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	BoatID      string    `json:"boat_id"`
}

// AuthUsecase logs in the demo accounts.
type AuthUsecase interface {
	Login(ctx context.Context, email, password string, role entity.Role) (*AuthResult, error)
}
