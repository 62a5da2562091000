package memory

import (
	"context"
	"slices"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"

	"github.com/google/uuid"
)

type boatRepository struct {
	g guard
}

func (r *boatRepository) FindAll(_ context.Context) ([]*entity.Boat, error) {
	var out []*entity.Boat
	r.g.read(func() {
		out = make([]*entity.Boat, len(r.g.store.boats))
		for i, b := range r.g.store.boats {
			out[i] = b.Clone()
		}
	})

	return out, nil
}

func (r *boatRepository) FindByID(_ context.Context, id string) (*entity.Boat, error) {
	var found *entity.Boat
	r.g.read(func() {
		if idx, ok := r.g.store.boatIndex[id]; ok {
			found = r.g.store.boats[idx].Clone()
		}
	})
	if found == nil {
		return nil, repository.ErrBoatNotFound
	}

	return found, nil
}

func (r *boatRepository) Upsert(_ context.Context, boat *entity.Boat) (bool, error) {
	var created bool
	r.g.write(func() {
		created = r.g.store.putBoat(boat.Clone())
	})

	return created, nil
}

func (r *boatRepository) SaveAll(_ context.Context, boats []*entity.Boat) error {
	r.g.write(func() {
		for _, b := range boats {
			r.g.store.putBoat(b.Clone())
		}
	})

	return nil
}

func (r *boatRepository) Count(_ context.Context) (int, error) {
	var n int
	r.g.read(func() {
		n = len(r.g.store.boats)
	})

	return n, nil
}

type sosRepository struct {
	g guard
}

func (r *sosRepository) Prepend(ctx context.Context, event *entity.SOSEvent) error {
	return r.PrependBatch(ctx, []*entity.SOSEvent{event})
}

func (r *sosRepository) PrependBatch(_ context.Context, events []*entity.SOSEvent) error {
	if len(events) == 0 {
		return nil
	}

	r.g.write(func() {
		s := r.g.store
		// The tail of the batch is the oldest entry, so it gets the lowest sequence.
		for i := len(events) - 1; i >= 0; i-- {
			events[i].Seq = s.nextSeq()
		}
		batch := make([]*entity.SOSEvent, len(events), len(events)+len(s.sos))
		for i, e := range events {
			c := *e
			batch[i] = &c
		}
		s.sos = append(batch, s.sos...)
	})

	return nil
}

func (r *sosRepository) FindAll(_ context.Context) ([]*entity.SOSEvent, error) {
	var out []*entity.SOSEvent
	r.g.read(func() {
		out = make([]*entity.SOSEvent, len(r.g.store.sos))
		for i, e := range r.g.store.sos {
			c := *e
			out[i] = &c
		}
	})

	return out, nil
}

func (r *sosRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.SOSEvent, error) {
	var found *entity.SOSEvent
	r.g.read(func() {
		idx := slices.IndexFunc(r.g.store.sos, func(e *entity.SOSEvent) bool { return e.ID == id })
		if idx >= 0 {
			c := *r.g.store.sos[idx]
			found = &c
		}
	})
	if found == nil {
		return nil, repository.ErrSOSNotFound
	}

	return found, nil
}

type notificationRepository struct {
	g guard
}

func (r *notificationRepository) PrependBatch(_ context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	r.g.write(func() {
		s := r.g.store
		batch := make([]*entity.Notification, len(notifications), len(notifications)+len(s.notifications))
		for i, n := range notifications {
			n.Seq = s.nextSeq()
			c := *n
			batch[len(notifications)-1-i] = &c
		}
		s.notifications = append(batch, s.notifications...)
	})

	return nil
}

func (r *notificationRepository) FindAll(_ context.Context) ([]*entity.Notification, error) {
	var out []*entity.Notification
	r.g.read(func() {
		out = make([]*entity.Notification, len(r.g.store.notifications))
		for i, n := range r.g.store.notifications {
			c := *n
			out[i] = &c
		}
	})

	return out, nil
}

func (r *notificationRepository) Clear(_ context.Context) error {
	r.g.write(func() {
		r.g.store.notifications = nil
	})

	return nil
}

type deviceRepository struct {
	g guard
}

func (r *deviceRepository) Register(_ context.Context, device *entity.BoatDevice) error {
	r.g.write(func() {
		s := r.g.store
		c := *device
		idx := slices.IndexFunc(s.devices, func(d *entity.BoatDevice) bool { return d.DeviceID == device.DeviceID })
		if idx >= 0 {
			c.ID = s.devices[idx].ID
			c.CreatedAt = s.devices[idx].CreatedAt
			s.devices[idx] = &c
			return
		}
		s.devices = append(s.devices, &c)
	})

	return nil
}

func (r *deviceRepository) FindByBoatIDs(_ context.Context, boatIDs []string) ([]*entity.BoatDevice, error) {
	var out []*entity.BoatDevice
	r.g.read(func() {
		for _, d := range r.g.store.devices {
			if slices.Contains(boatIDs, d.BoatID) {
				c := *d
				out = append(out, &c)
			}
		}
	})

	return out, nil
}

func (r *deviceRepository) DeleteByTokens(_ context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	r.g.write(func() {
		r.g.store.devices = slices.DeleteFunc(r.g.store.devices, func(d *entity.BoatDevice) bool {
			return slices.Contains(tokens, d.FCMToken)
		})
	})

	return nil
}

type userRepository struct {
	byEmail map[string]*entity.User
}

// NewUserRepository returns a read-only account table.
func NewUserRepository(users []*entity.User) repository.UserRepository {
	byEmail := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}

	return &userRepository{byEmail: byEmail}
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	c := *u

	return &c, nil
}
