package forecast

import (
	"log/slog"

	"tidewise/config"
	"tidewise/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the weather, marine and advisory providers.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config, logger *slog.Logger) service.WeatherProvider {
			return NewOpenWeatherClient(cfg.Weather, logger)
		},
		func(cfg *config.Config, logger *slog.Logger) service.MarineProvider {
			return NewStormGlassClient(cfg.Marine, logger)
		},
		func(cfg *config.Config, logger *slog.Logger) service.AdvisoryGenerator {
			return NewGeminiClient(cfg.Advisory, logger)
		},
	),
)
