// Package scheduler runs the periodic jobs of the API process: the fleet
// simulation tick and the offline SOS queue flush.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tidewise/config"
	"tidewise/internal/delivery"
	"tidewise/internal/domain/lifecycle"
	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
	"tidewise/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc"
	"go.uber.org/fx"
)

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

type scheduler struct {
	jobs   []job
	clock  clockwork.Clock
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Clock    clockwork.Clock
	Logger   *slog.Logger
	Fleet    usecase.FleetUsecase
	Distress usecase.DistressUsecase
	Probe    service.ConnectivityProbe
}

// New builds the scheduler delivery from the simulation and connectivity config.
func New(params Params) delivery.Delivery {
	s := &scheduler{
		clock:  params.Clock,
		logger: params.Logger,
		done:   make(chan struct{}),
	}

	if sim := params.Cfg.Simulation; sim != nil && sim.Enabled && sim.TickInterval > 0 {
		s.jobs = append(s.jobs, job{
			name:     "fleet_tick",
			interval: sim.TickInterval,
			run:      params.Fleet.Tick,
		})
	}

	if cc := params.Cfg.Connectivity; cc != nil && cc.CheckInterval > 0 {
		s.jobs = append(s.jobs, job{
			name:     "offline_flush",
			interval: cc.CheckInterval,
			run:      flushWhenOnline(params.Distress, params.Probe, params.Logger),
		})
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// flushWhenOnline flushes the offline queue once the uplink is back.
func flushWhenOnline(distress usecase.DistressUsecase, probe service.ConnectivityProbe, logger *slog.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		if !probe.Online(ctx) {
			return nil
		}

		queued, err := distress.OfflineQueueLength(ctx)
		if err != nil {
			return errors.Wrap(err, "read offline queue length")
		}
		if queued == 0 {
			return nil
		}

		flushed, err := distress.FlushOffline(ctx)
		if err != nil {
			return errors.Wrap(err, "flush offline queue")
		}
		logger.Info("Flushed offline SOS queue", slog.Int("flushed", flushed))

		return nil
	}
}

// Serve runs every job on its own ticker until ctx ends or the scheduler stops.
func (s *scheduler) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer close(s.done)
	defer cancel()

	if len(s.jobs) == 0 {
		s.logger.Info("Scheduler has no jobs enabled")
	}

	var wg conc.WaitGroup
	for _, j := range s.jobs {
		wg.Go(func() { s.loop(ctx, j) })
	}
	wg.Wait()

	return nil
}

func (s *scheduler) loop(ctx context.Context, j job) {
	s.logger.Info("Starting scheduled job", slog.String("job", j.name), slog.Duration("interval", j.interval))

	ticker := s.clock.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := j.run(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("Scheduled job failed", slog.String("job", j.name), slog.Any("error", err))
			}
		}
	}
}

func (s *scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	s.logger.Info("Stopping scheduler")
	cancel()

	ctx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
