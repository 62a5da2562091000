package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/repository"
	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
	"tidewise/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService creates the demo-account login use case.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials and issues an access token. An unknown email,
// a wrong password and a role the account does not hold all fail the same way.
func (srv *authService) Login(ctx context.Context, email, password string, role entity.Role) (*usecase.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}
	if role != "" && !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + role.String())
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	passwordOK := srv.hasher.Check(password, user.PasswordHash)
	if !passwordOK || (role != "" && role != user.Role) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "credentials rejected"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{user.Role}.ToStrings(), user.BoatID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Name:        user.Name,
		Role:        user.Role.String(),
		BoatID:      user.BoatID,
	}, nil
}
