package memory

import (
	"strings"

	"tidewise/config"
	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
	"tidewise/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NewSeededUserRepository hashes the configured demo accounts into a user table.
// User IDs derive from the email so issued tokens survive a restart.
func NewSeededUserRepository(cfg *config.Config, hasher service.PasswordHasher) (repository.UserRepository, error) {
	var seeds []config.SeedUser
	if cfg.Auth != nil {
		seeds = cfg.Auth.Users
	}

	users := make([]*entity.User, 0, len(seeds))
	for _, s := range seeds {
		role := entity.Role(s.Role)
		if !role.IsValid() {
			return nil, errors.Errorf("seed user %s has unknown role %q", s.Email, s.Role)
		}

		hash, err := hasher.Hash(s.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "hash password for %s", s.Email)
		}

		email := strings.ToLower(strings.TrimSpace(s.Email))
		users = append(users, &entity.User{
			ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)),
			Email:        email,
			Name:         s.Name,
			Role:         role,
			BoatID:       s.BoatID,
			PasswordHash: hash,
		})
	}

	return NewUserRepository(users), nil
}
