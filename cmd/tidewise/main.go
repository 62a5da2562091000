package main

import (
	"context"
	"log/slog"
	"os"

	"tidewise/config"
	"tidewise/internal/delivery"
	"tidewise/internal/delivery/api"
	"tidewise/internal/delivery/api/middleware"
	"tidewise/internal/delivery/api/router/handler"
	"tidewise/internal/delivery/scheduler"
	"tidewise/internal/domain/service"
	"tidewise/internal/infra/auth"
	"tidewise/internal/infra/cache"
	"tidewise/internal/infra/connectivity"
	"tidewise/internal/infra/forecast"
	"tidewise/internal/infra/i18n"
	logs "tidewise/internal/infra/log"
	"tidewise/internal/infra/metrics"
	"tidewise/internal/infra/persistence"
	"tidewise/internal/infra/pubsub"
	"tidewise/internal/infra/qrcode"
	"tidewise/internal/infra/queue"
	"tidewise/internal/infra/redis"
	"tidewise/internal/infra/voice"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clockwork.NewRealClock,
			metrics.NewMetrics,
		),
		redis.Module,
		connectivity.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
		queue.Module,
		cache.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			voice.NewLogAnnouncer,
			newPhraseCatalog,
		),
		forecast.Module,
		pubsub.Module,
	)
}

// newPhraseCatalog exposes the i18n catalog with the configured default language.
func newPhraseCatalog(cfg *config.Config) service.PhraseCatalog {
	return i18n.NewCatalog(cfg.Voice.DefaultLanguage)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewFleetService,
			impl.NewDistressService,
			impl.NewNotificationService,
			impl.NewConditionsService,
			impl.NewNavigationService,
			impl.NewVoiceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFleetHandler,
			handler.NewDistressHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewConditionsHandler,
			handler.NewNavigationHandler,
			handler.NewVoiceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
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
