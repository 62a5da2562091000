package queue

import (
	"tidewise/config"
	"tidewise/internal/domain/constants"
	"tidewise/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the offline SOS queue, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Redis  *goredis.Client `optional:"true"`
}

// New selects the queue backend from tracker.offlineQueue.backend.
func New(params Params) (repository.OfflineQueue, error) {
	qc := params.Config.Tracker.OfflineQueue

	switch qc.Backend {
	case constants.QueueBackendFile, "":
		return NewFileQueue(qc.Path)
	case constants.QueueBackendRedis:
		if params.Redis == nil {
			return nil, errors.New("redis queue backend needs redis.addr")
		}

		return NewRedisQueue(params.Redis, params.Config.Redis.KeyPrefix+qc.RedisKey), nil
	case constants.QueueBackendMemory:
		return NewMemoryQueue(), nil
	default:
		return nil, errors.Errorf("unknown offline queue backend: %s", qc.Backend)
	}
}

// Module provides the offline SOS queue.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
