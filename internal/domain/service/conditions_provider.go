package service

import (
	"context"
	"time"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/geo"
	"tidewise/internal/errors"
)

// ErrProviderNotConfigured is returned by external providers that have no API key.
var ErrProviderNotConfigured = errors.New("provider not configured")

// WeatherProvider reads current wind conditions.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, at geo.Coordinate) (*entity.Weather, error)
}

// MarineProvider reads current sea state.
type MarineProvider interface {
	SeaState(ctx context.Context, at geo.Coordinate) (*entity.Marine, error)
}

// AdvisoryGenerator turns a prompt into advisory text with a language model.
type AdvisoryGenerator interface {
	GenerateAdvisory(ctx context.Context, prompt string) (string, error)
}

// Cache is a small key/value cache for last-known provider results.
type Cache interface {
	// Get returns the value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value for ttl. A zero ttl keeps it until evicted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
