package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"tidewise/config"
	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/lifecycle"
	"tidewise/internal/errors"
	"tidewise/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client. On start it pings the primary, migrates
// the tracker tables and registers the configured seed fleet.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	seed := SeedBoatsFromConfig(params.Config)

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := Migrate(ctx, db); err != nil {
				return err
			}
			if err := registerSeedBoats(ctx, db, seed); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tracker tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate tracker tables")
	}

	return nil
}

// registerSeedBoats inserts seed boats that are not registered yet. Boats that
// already exist keep their last stored position.
func registerSeedBoats(ctx context.Context, db *gorm.DB, boats []*entity.Boat) error {
	if len(boats) == 0 {
		return nil
	}

	boatModels := make([]*model.BoatModel, 0, len(boats))
	for _, b := range boats {
		boatModels = append(boatModels, fromBoatDomain(b))
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&boatModels).Error; err != nil {
		return errors.Wrap(err, "failed to register seed boats")
	}

	return nil
}

// SeedBoatsFromConfig converts the configured fleet into boats in config order.
func SeedBoatsFromConfig(cfg *config.Config) []*entity.Boat {
	if cfg.Tracker == nil {
		return nil
	}

	boats := make([]*entity.Boat, 0, len(cfg.Tracker.Boats))
	for _, b := range cfg.Tracker.Boats {
		status := entity.BoatStatus(b.Status)
		if !status.IsValid() {
			status = entity.BoatStatusSafe
		}
		boats = append(boats, &entity.Boat{ID: b.ID, Lat: b.Lat, Lng: b.Lng, Status: status, Zone: b.Zone})
	}

	return boats
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
