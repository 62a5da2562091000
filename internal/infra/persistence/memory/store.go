// Package memory is the in-process tracker store: boat registry, SOS list,
// notification list and device registry behind one mutex.
package memory

import (
	"context"
	"sync"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
)

// Store owns all tracker state. Every repository created from it shares the
// same lock; repositories handed out inside Execute run under the lock the
// transaction already holds.
type Store struct {
	mu sync.RWMutex

	seq           uint64
	boats         []*entity.Boat
	boatIndex     map[string]int
	sos           []*entity.SOSEvent    // newest first
	notifications []*entity.Notification // newest first
	devices       []*entity.BoatDevice
}

// NewStore creates an empty store with the given boats registered in order.
func NewStore(seed ...*entity.Boat) *Store {
	s := &Store{boatIndex: make(map[string]int)}
	for _, b := range seed {
		s.putBoat(b.Clone())
	}

	return s
}

type state struct {
	seq           uint64
	boats         []*entity.Boat
	sos           []*entity.SOSEvent
	notifications []*entity.Notification
	devices       []*entity.BoatDevice
}

// snapshot copies everything Execute may need to restore.
// SOS events and notifications are never mutated in place, so sharing
// their pointers is enough.
func (s *Store) snapshot() state {
	boats := make([]*entity.Boat, len(s.boats))
	for i, b := range s.boats {
		boats[i] = b.Clone()
	}
	devices := make([]*entity.BoatDevice, len(s.devices))
	for i, d := range s.devices {
		c := *d
		devices[i] = &c
	}

	return state{
		seq:           s.seq,
		boats:         boats,
		sos:           append([]*entity.SOSEvent(nil), s.sos...),
		notifications: append([]*entity.Notification(nil), s.notifications...),
		devices:       devices,
	}
}

func (s *Store) restore(st state) {
	s.seq = st.seq
	s.boats = st.boats
	s.boatIndex = make(map[string]int, len(st.boats))
	for i, b := range st.boats {
		s.boatIndex[b.ID] = i
	}
	s.sos = st.sos
	s.notifications = st.notifications
	s.devices = st.devices
}

func (s *Store) putBoat(b *entity.Boat) (created bool) {
	if idx, ok := s.boatIndex[b.ID]; ok {
		s.boats[idx] = b
		return false
	}
	s.boatIndex[b.ID] = len(s.boats)
	s.boats = append(s.boats, b)

	return true
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// guard applies the store lock unless the caller already holds it.
type guard struct {
	store *Store
	inTx  bool
}

func (g guard) read(fn func()) {
	if !g.inTx {
		g.store.mu.RLock()
		defer g.store.mu.RUnlock()
	}
	fn()
}

func (g guard) write(fn func()) {
	if !g.inTx {
		g.store.mu.Lock()
		defer g.store.mu.Unlock()
	}
	fn()
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager that serializes callbacks
// on the store lock and restores the previous state when the callback fails.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	saved := tm.store.snapshot()
	committed := false
	defer func() {
		if !committed {
			tm.store.restore(saved)
		}
	}()

	if err := fn(&repositoryFactory{g: guard{store: tm.store, inTx: true}}); err != nil {
		return err
	}
	committed = true

	return nil
}

type repositoryFactory struct {
	g guard
}

func (f *repositoryFactory) NewBoatRepository() repository.BoatRepository {
	return &boatRepository{g: f.g}
}

func (f *repositoryFactory) NewSOSRepository() repository.SOSRepository {
	return &sosRepository{g: f.g}
}

func (f *repositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return &notificationRepository{g: f.g}
}

func (f *repositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{g: f.g}
}

// NewBoatRepository returns a lock-taking boat repository over store.
func NewBoatRepository(store *Store) repository.BoatRepository {
	return &boatRepository{g: guard{store: store}}
}

// NewSOSRepository returns a lock-taking SOS repository over store.
func NewSOSRepository(store *Store) repository.SOSRepository {
	return &sosRepository{g: guard{store: store}}
}

// NewNotificationRepository returns a lock-taking notification repository over store.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{g: guard{store: store}}
}

// NewDeviceRepository returns a lock-taking device repository over store.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{g: guard{store: store}}
}
