package queue

import (
	"context"
	"encoding/json"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
	"tidewise/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// redisQueue stores events in a redis list, newest at the head.
type redisQueue struct {
	client *goredis.Client
	key    string
}

// NewRedisQueue returns a queue backed by the list at key.
func NewRedisQueue(client *goredis.Client, key string) repository.OfflineQueue {
	return &redisQueue{client: client, key: key}
}

func (q *redisQueue) Push(ctx context.Context, event *entity.SOSEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode sos event")
	}

	return errors.Wrap(q.client.LPush(ctx, q.key, data).Err(), "redis LPUSH")
}

func (q *redisQueue) Drain(ctx context.Context) ([]*entity.SOSEvent, error) {
	var items *goredis.StringSliceCmd
	_, err := q.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		items = pipe.LRange(ctx, q.key, 0, -1)
		pipe.Del(ctx, q.key)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "redis drain")
	}

	raw, err := items.Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis LRANGE")
	}

	events := make([]*entity.SOSEvent, 0, len(raw))
	for _, item := range raw {
		var e entity.SOSEvent
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		events = append(events, &e)
	}

	return events, nil
}

func (q *redisQueue) Len(ctx context.Context) (int, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, errors.Wrap(err, "redis LLEN")
	}

	return int(n), nil
}
