package main

import (
	"context"
	"log/slog"
	"os"

	"tidewise/config"
	"tidewise/internal/delivery"
	"tidewise/internal/delivery/worker"
	"tidewise/internal/delivery/worker/handler"
	"tidewise/internal/domain/service"
	"tidewise/internal/infra/auth"
	logs "tidewise/internal/infra/log"
	"tidewise/internal/infra/metrics"
	"tidewise/internal/infra/notification"
	"tidewise/internal/infra/persistence"
	"tidewise/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clockwork.NewRealClock,
		metrics.NewMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newNotificationService,
		),
	)
}

// newNotificationService sends through Firebase when a project or credentials
// are configured, and logs the pushes otherwise.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase is not configured, pushes will only be logged")

		return notification.NewLogNotificationService(logger), nil
	}

	return notification.NewFirebaseService(ctx, cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAlertRelayService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewKafkaConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
