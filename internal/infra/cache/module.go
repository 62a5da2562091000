package cache

import (
	"tidewise/config"
	"tidewise/internal/domain/constants"
	"tidewise/internal/domain/service"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the conditions cache, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Clock  clockwork.Clock
	Redis  *goredis.Client `optional:"true"`
}

// New selects the cache backend from cache.backend.
func New(params Params) (service.Cache, error) {
	switch params.Config.Cache.Backend {
	case constants.QueueBackendMemory, "":
		return NewMemoryCache(params.Clock), nil
	case constants.QueueBackendRedis:
		if params.Redis == nil {
			return nil, errors.New("redis cache backend needs redis.addr")
		}

		return NewRedisCache(params.Redis, params.Config.Redis.KeyPrefix+"cache:"), nil
	default:
		return nil, errors.Errorf("unknown cache backend: %s", params.Config.Cache.Backend)
	}
}

// Module provides the conditions cache.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
