// Package queue holds the offline SOS queue backends.
package queue

import (
	"context"
	"sync"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
)

type memoryQueue struct {
	mu     sync.Mutex
	events []*entity.SOSEvent // newest first
}

// NewMemoryQueue returns a non-durable queue for tests and single-run demos.
func NewMemoryQueue() repository.OfflineQueue {
	return &memoryQueue{}
}

func (q *memoryQueue) Push(_ context.Context, event *entity.SOSEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	c := *event
	q.events = append([]*entity.SOSEvent{&c}, q.events...)

	return nil
}

func (q *memoryQueue) Drain(_ context.Context) ([]*entity.SOSEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.events
	q.events = nil

	return out, nil
}

func (q *memoryQueue) Len(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.events), nil
}
