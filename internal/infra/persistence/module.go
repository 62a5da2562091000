// Package persistence selects the tracker store backend.
package persistence

import (
	"log/slog"

	"tidewise/config"
	"tidewise/internal/domain/constants"
	"tidewise/internal/domain/repository"
	"tidewise/internal/domain/service"
	"tidewise/internal/infra/persistence/memory"
	"tidewise/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the store backends, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// Repositories is every repository the use cases need, from one backend.
type Repositories struct {
	fx.Out

	Boats         repository.BoatRepository
	SOS           repository.SOSRepository
	Notifications repository.NotificationRepository
	Devices       repository.DeviceRepository
	Users         repository.UserRepository
	TxManager     repository.TransactionManager
}

// New builds the repositories for storage.driver. Login accounts always come
// from the seeded in-memory table.
func New(params Params) (Repositories, error) {
	users, err := memory.NewSeededUserRepository(params.Config, params.Hasher)
	if err != nil {
		return Repositories{}, err
	}

	switch params.Config.Storage.Driver {
	case constants.StorageDriverMemory, "":
		store := memory.NewStore(postgres.SeedBoatsFromConfig(params.Config)...)
		params.Logger.Info("Using in-memory tracker store")

		return Repositories{
			Boats:         memory.NewBoatRepository(store),
			SOS:           memory.NewSOSRepository(store),
			Notifications: memory.NewNotificationRepository(store),
			Devices:       memory.NewDeviceRepository(store),
			Users:         users,
			TxManager:     memory.NewTransactionManager(store),
		}, nil

	case constants.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres section is required for the postgres storage driver")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL tracker store")

		return Repositories{
			Boats:         postgres.NewBoatRepository(db),
			SOS:           postgres.NewSOSRepository(db),
			Notifications: postgres.NewNotificationRepository(db),
			Devices:       postgres.NewDeviceRepository(db),
			Users:         users,
			TxManager:     postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

// Module provides the tracker repositories.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
