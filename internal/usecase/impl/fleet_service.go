package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"tidewise/config"
	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/geo"
	"tidewise/internal/domain/repository"
	"tidewise/internal/errors"
	"tidewise/internal/infra/metrics"
	"tidewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// Simulation odds, per tick.
const (
	tickJitterDegrees  = 0.005
	tickWarningChance  = 0.03
	tickRecoveryChance = 0.5
	tickSOSChance      = 0.02
)

const defaultRecentWindow = 5 * time.Minute

// RandSource is the randomness the fleet simulator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

type fleetService struct {
	txManager    repository.TransactionManager
	boatRepo     repository.BoatRepository
	sosRepo      repository.SOSRepository
	queue        repository.OfflineQueue
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	recentWindow time.Duration
	zoneCount    int
	logger       *slog.Logger

	randMu sync.Mutex
	rand   RandSource
}

// FleetServiceParams holds dependencies for FleetService, injected by Fx.
type FleetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BoatRepo  repository.BoatRepository
	SOSRepo   repository.SOSRepository
	Queue     repository.OfflineQueue
	Clock     clockwork.Clock
	Metrics   *metrics.Metrics
	Config    *config.Config
	Logger    *slog.Logger
	Rand      RandSource `optional:"true"`
}

// NewFleetService creates the boat registry use case and fleet simulator.
func NewFleetService(params FleetServiceParams) usecase.FleetUsecase {
	srv := &fleetService{
		txManager:    params.TxManager,
		boatRepo:     params.BoatRepo,
		sosRepo:      params.SOSRepo,
		queue:        params.Queue,
		clock:        params.Clock,
		metrics:      params.Metrics,
		recentWindow: defaultRecentWindow,
		logger:       params.Logger,
		rand:         params.Rand,
	}

	var seed int64
	if cfg := params.Config; cfg != nil {
		if cfg.Tracker != nil && cfg.Tracker.RecentWindow > 0 {
			srv.recentWindow = cfg.Tracker.RecentWindow
		}
		if cfg.Navigate != nil {
			srv.zoneCount = len(cfg.Navigate.DangerZones) + len(cfg.Navigate.SafeZones)
		}
		if cfg.Simulation != nil {
			seed = cfg.Simulation.Seed
		}
	}
	if srv.rand == nil {
		if seed == 0 {
			seed = params.Clock.Now().UnixNano()
		}
		srv.rand = rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1)|1))
	}

	return srv
}

func (srv *fleetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SnapshotBoats returns every boat in registration order.
func (srv *fleetService) SnapshotBoats(ctx context.Context) ([]*entity.Boat, error) {
	boats, err := srv.boatRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list boats")
	}

	return boats, nil
}

// UpdatePosition moves a boat, registering it as a safe fisherman boat on first report.
func (srv *fleetService) UpdatePosition(ctx context.Context, boatID string, lat, lng float64) (*entity.Boat, error) {
	if boatID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("boat id is required")
	}
	if !(geo.Coordinate{Lat: lat, Lng: lng}).Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	var boat *entity.Boat
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		boatRepo := f.NewBoatRepository()

		var err error
		boat, err = boatRepo.FindByID(ctx, boatID)
		switch {
		case errors.Is(err, repository.ErrBoatNotFound):
			boat = &entity.Boat{ID: boatID, Status: entity.BoatStatusSafe, Zone: entity.ZoneFisherman}
		case err != nil:
			return errors.Wrap(err, "failed to find boat")
		}
		boat.Lat = lat
		boat.Lng = lng
		boat.UpdatedAt = srv.clock.Now()

		created, err := boatRepo.Upsert(ctx, boat)
		if err != nil {
			return errors.Wrap(err, "failed to save boat")
		}
		if created {
			srv.log(ctx).Info("Boat registered", slog.String("boat_id", boatID))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return boat, nil
}

// Tick advances the fleet simulation by one step: positions drift, statuses
// flicker between safe and warning, and occasionally a boat raises an SOS.
// Simulated SOS events are recorded without notification fan-out.
func (srv *fleetService) Tick(ctx context.Context) error {
	srv.randMu.Lock()
	defer srv.randMu.Unlock()

	now := srv.clock.Now()
	var (
		tracked int
		raised  *entity.SOSEvent
	)
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		boatRepo := f.NewBoatRepository()
		boats, err := boatRepo.FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list boats")
		}
		tracked = len(boats)

		for _, b := range boats {
			b.Lat += (srv.rand.Float64() - 0.5) * tickJitterDegrees
			b.Lng += (srv.rand.Float64() - 0.5) * tickJitterDegrees
			switch {
			case srv.rand.Float64() < tickWarningChance:
				b.Status = entity.BoatStatusWarning
			case b.Status == entity.BoatStatusWarning && srv.rand.Float64() < tickRecoveryChance:
				b.Status = entity.BoatStatusSafe
			}
			b.UpdatedAt = now
		}

		if len(boats) > 0 && srv.rand.Float64() < tickSOSChance {
			b := boats[srv.rand.IntN(len(boats))]
			b.Status = entity.BoatStatusSOS
			raised = &entity.SOSEvent{
				ID:     uuid.Must(uuid.NewV7()),
				BoatID: b.ID,
				Time:   now,
				Lat:    b.Lat,
				Lng:    b.Lng,
			}
			if err := f.NewSOSRepository().Prepend(ctx, raised); err != nil {
				return errors.Wrap(err, "failed to record simulated sos")
			}
		}

		return boatRepo.SaveAll(ctx, boats)
	})
	if err != nil {
		return errors.Wrap(err, "fleet tick failed")
	}

	srv.metrics.BoatsTracked.Set(float64(tracked))
	if raised != nil {
		srv.log(ctx).Info("Simulated SOS", slog.String("boat_id", raised.BoatID))
	}

	return nil
}

// Stats summarises the fleet for the authority dashboard.
func (srv *fleetService) Stats(ctx context.Context) (*entity.FleetStats, error) {
	boats, err := srv.boatRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list boats")
	}
	events, err := srv.sosRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sos events")
	}
	queued, err := srv.queue.Len(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read offline queue")
	}

	stats := &entity.FleetStats{
		TotalBoats: len(boats),
		ByStatus: map[entity.BoatStatus]int{
			entity.BoatStatusSafe:    0,
			entity.BoatStatusWarning: 0,
			entity.BoatStatusSOS:     0,
		},
		ActiveAlerts:   len(events),
		OfflineQueued:  queued,
		ZonesMonitored: srv.zoneCount,
	}
	for _, b := range boats {
		stats.ByStatus[b.Status]++
	}

	now := srv.clock.Now()
	for _, e := range events {
		if now.Sub(e.Time) < srv.recentWindow {
			stats.RecentSOSCalls++
		}
	}

	return stats, nil
}
