package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tidewise/config"
	mockService "tidewise/internal/mocks/service"
	mockUsecase "tidewise/internal/mocks/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type schedulerFixture struct {
	lc       *fxtest.Lifecycle
	clock    *clockwork.FakeClock
	fleet    *mockUsecase.MockFleetUsecase
	distress *mockUsecase.MockDistressUsecase
	probe    *mockService.MockConnectivityProbe
	cfg      *config.Config
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Simulation.Enabled = false
	cfg.Connectivity.CheckInterval = 0

	return &schedulerFixture{
		lc:       fxtest.NewLifecycle(t),
		clock:    clockwork.NewFakeClock(),
		fleet:    mockUsecase.NewMockFleetUsecase(t),
		distress: mockUsecase.NewMockDistressUsecase(t),
		probe:    mockService.NewMockConnectivityProbe(t),
		cfg:      cfg,
	}
}

// start runs the scheduler and waits until its tickers are armed.
func (f *schedulerFixture) start(t *testing.T, tickers int) {
	t.Helper()

	s := New(Params{
		Lc:       f.lc,
		Cfg:      f.cfg,
		Clock:    f.clock,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Fleet:    f.fleet,
		Distress: f.distress,
		Probe:    f.probe,
	})
	f.lc.RequireStart()

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.clock.BlockUntilContext(ctx, tickers))

	t.Cleanup(func() {
		f.lc.RequireStop()
		require.NoError(t, <-done)
	})
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}

func TestScheduler_FleetTick(t *testing.T) {
	f := newSchedulerFixture(t)
	f.cfg.Simulation.Enabled = true
	f.cfg.Simulation.TickInterval = 500 * time.Millisecond

	ticked := make(chan struct{}, 1)
	f.fleet.EXPECT().Tick(mock.Anything).RunAndReturn(func(context.Context) error {
		ticked <- struct{}{}

		return nil
	}).Once()

	f.start(t, 1)
	f.clock.Advance(500 * time.Millisecond)
	waitFor(t, ticked)
}

func TestScheduler_FlushesWhenBackOnline(t *testing.T) {
	f := newSchedulerFixture(t)
	f.cfg.Connectivity.CheckInterval = 5 * time.Second

	flushed := make(chan struct{}, 1)
	f.probe.EXPECT().Online(mock.Anything).Return(true).Once()
	f.distress.EXPECT().OfflineQueueLength(mock.Anything).Return(2, nil).Once()
	f.distress.EXPECT().FlushOffline(mock.Anything).RunAndReturn(func(context.Context) (int, error) {
		flushed <- struct{}{}

		return 2, nil
	}).Once()

	f.start(t, 1)
	f.clock.Advance(5 * time.Second)
	waitFor(t, flushed)
}

func TestScheduler_SkipsFlushWhileOffline(t *testing.T) {
	f := newSchedulerFixture(t)
	f.cfg.Connectivity.CheckInterval = 5 * time.Second

	probed := make(chan struct{}, 1)
	f.probe.EXPECT().Online(mock.Anything).RunAndReturn(func(context.Context) bool {
		probed <- struct{}{}

		return false
	}).Once()

	f.start(t, 1)
	f.clock.Advance(5 * time.Second)
	waitFor(t, probed)
}

func TestScheduler_NoJobs(t *testing.T) {
	f := newSchedulerFixture(t)

	s := New(Params{
		Lc:     f.lc,
		Cfg:    f.cfg,
		Clock:  f.clock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, s.Serve(context.Background()))
}
