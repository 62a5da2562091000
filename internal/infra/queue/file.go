package queue

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
	"tidewise/internal/errors"
)

// fileQueue keeps the queue as a JSON array, newest first, in a single file.
// Writes go through a temp file and rename so a crash never leaves a torn file.
type fileQueue struct {
	mu   sync.Mutex
	path string
}

// NewFileQueue returns a queue persisted at path. The directory is created if needed.
func NewFileQueue(path string) (repository.OfflineQueue, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create queue directory for %s", path)
	}

	return &fileQueue{path: path}, nil
}

func (q *fileQueue) Push(_ context.Context, event *entity.SOSEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	events, err := q.read()
	if err != nil {
		return err
	}

	return q.write(append([]*entity.SOSEvent{event}, events...))
}

func (q *fileQueue) Drain(_ context.Context) ([]*entity.SOSEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	events, err := q.read()
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	if err := q.write(nil); err != nil {
		return nil, err
	}

	return events, nil
}

func (q *fileQueue) Len(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	events, err := q.read()
	if err != nil {
		return 0, err
	}

	return len(events), nil
}

// read treats a missing or unparsable file as an empty queue, like the browser
// client did with its localStorage copy.
func (q *fileQueue) read() ([]*entity.SOSEvent, error) {
	data, err := os.ReadFile(q.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read queue file %s", q.path)
	}

	var events []*entity.SOSEvent
	if err := json.Unmarshal(data, &events); err != nil {
		// A corrupt queue is discarded.
		return nil, nil
	}

	return events, nil
}

func (q *fileQueue) write(events []*entity.SOSEvent) error {
	if events == nil {
		events = []*entity.SOSEvent{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return errors.Wrap(err, "encode queue")
	}

	tmp, err := os.CreateTemp(filepath.Dir(q.path), filepath.Base(q.path)+".*")
	if err != nil {
		return errors.Wrap(err, "create queue temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write queue temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close queue temp file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), q.path), "replace queue file")
}
