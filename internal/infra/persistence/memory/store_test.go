package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/repository"
	"tidewise/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBoats() []*entity.Boat {
	return []*entity.Boat{
		{ID: "127", Lat: 16.50, Lng: 80.60, Status: entity.BoatStatusSafe, Zone: "A"},
		{ID: "089", Lat: 16.40, Lng: 80.70, Status: entity.BoatStatusSafe, Zone: "B"},
		{ID: "203", Lat: 16.60, Lng: 80.50, Status: entity.BoatStatusWarning, Zone: "C"},
	}
}

func TestBoatRepository_KeepsRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore(seedBoats()...)
	repo := NewBoatRepository(store)

	created, err := repo.Upsert(ctx, &entity.Boat{ID: "F-001", Lat: 16.1, Lng: 80.9, Status: entity.BoatStatusSafe})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Upsert(ctx, &entity.Boat{ID: "089", Lat: 16.41, Lng: 80.71, Status: entity.BoatStatusSOS})
	require.NoError(t, err)
	assert.False(t, created)

	boats, err := repo.FindAll(ctx)
	require.NoError(t, err)
	ids := make([]string, len(boats))
	for i, b := range boats {
		ids[i] = b.ID
	}
	assert.Equal(t, []string{"127", "089", "203", "F-001"}, ids)
	assert.Equal(t, entity.BoatStatusSOS, boats[1].Status)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestBoatRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewBoatRepository(NewStore(seedBoats()...))

	b, err := repo.FindByID(ctx, "127")
	require.NoError(t, err)
	b.Status = entity.BoatStatusSOS

	again, err := repo.FindByID(ctx, "127")
	require.NoError(t, err)
	assert.Equal(t, entity.BoatStatusSafe, again.Status)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrBoatNotFound)
}

func TestSOSRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSOSRepository(NewStore())
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	first := &entity.SOSEvent{ID: uuid.New(), BoatID: "a", Time: ts}
	second := &entity.SOSEvent{ID: uuid.New(), BoatID: "b", Time: ts}
	require.NoError(t, repo.Prepend(ctx, first))
	require.NoError(t, repo.Prepend(ctx, second))

	queuedNewer := &entity.SOSEvent{ID: uuid.New(), BoatID: "q2", Time: ts}
	queuedOlder := &entity.SOSEvent{ID: uuid.New(), BoatID: "q1", Time: ts}
	require.NoError(t, repo.PrependBatch(ctx, []*entity.SOSEvent{queuedNewer, queuedOlder}))

	events, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 4)

	ids := []string{events[0].BoatID, events[1].BoatID, events[2].BoatID, events[3].BoatID}
	assert.Equal(t, []string{"q2", "q1", "b", "a"}, ids)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i-1].Seq, events[i].Seq)
	}

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", found.BoatID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSOSNotFound)
}

func TestNotificationRepository_BatchOrderAndClear(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(NewStore())

	batch := func(prefix string, n int) []*entity.Notification {
		out := make([]*entity.Notification, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, &entity.Notification{ID: uuid.New(), BoatID: prefix, Type: entity.NotificationTypeSOSAlert})
		}
		out[n-1].Type = entity.NotificationTypeAuthorityAlert

		return out
	}

	require.NoError(t, repo.PrependBatch(ctx, batch("one", 1)))
	require.NoError(t, repo.PrependBatch(ctx, batch("five", 5)))
	require.NoError(t, repo.PrependBatch(ctx, batch("two", 2)))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "two", all[0].BoatID)
	assert.Equal(t, entity.NotificationTypeAuthorityAlert, all[0].Type)
	assert.Equal(t, "one", all[7].BoatID)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].Seq, all[i].Seq)
	}

	require.NoError(t, repo.Clear(ctx))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.PrependBatch(ctx, batch("after", 3)))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, entity.NotificationTypeAuthorityAlert, all[0].Type)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore(seedBoats()...)
	tm := NewTransactionManager(store)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.NewBoatRepository().Upsert(ctx, &entity.Boat{ID: "127", Status: entity.BoatStatusSOS})
		require.NoError(t, err)
		require.NoError(t, f.NewSOSRepository().Prepend(ctx, &entity.SOSEvent{ID: uuid.New(), BoatID: "127"}))
		require.NoError(t, f.NewNotificationRepository().PrependBatch(ctx, []*entity.Notification{{ID: uuid.New()}}))
		require.NoError(t, f.NewDeviceRepository().Register(ctx, &entity.BoatDevice{ID: uuid.New(), BoatID: "127", DeviceID: "d1"}))

		return boom
	})
	require.ErrorIs(t, err, boom)

	b, err := NewBoatRepository(store).FindByID(ctx, "127")
	require.NoError(t, err)
	assert.Equal(t, entity.BoatStatusSafe, b.Status)

	events, _ := NewSOSRepository(store).FindAll(ctx)
	assert.Empty(t, events)
	notifications, _ := NewNotificationRepository(store).FindAll(ctx)
	assert.Empty(t, notifications)
	devices, _ := NewDeviceRepository(store).FindByBoatIDs(ctx, []string{"127"})
	assert.Empty(t, devices)
}

func TestTransactionManager_CommitsAndSerializes(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				return f.NewSOSRepository().Prepend(ctx, &entity.SOSEvent{ID: uuid.New()})
			})
		}()
	}
	wg.Wait()

	events, err := NewSOSRepository(store).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, workers)
	assert.Equal(t, uint64(workers), events[0].Seq)
	assert.Equal(t, uint64(1), events[workers-1].Seq)
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTransactionManager(NewStore()).Execute(ctx, func(repository.RepositoryFactory) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDeviceRepository_RegisterReplacesAndDeletes(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(NewStore())

	require.NoError(t, repo.Register(ctx, &entity.BoatDevice{ID: uuid.New(), BoatID: "127", DeviceID: "phone", FCMToken: "old"}))
	require.NoError(t, repo.Register(ctx, &entity.BoatDevice{ID: uuid.New(), BoatID: "127", DeviceID: "phone", FCMToken: "new"}))
	require.NoError(t, repo.Register(ctx, &entity.BoatDevice{ID: uuid.New(), BoatID: "089", DeviceID: "radio", FCMToken: "t2"}))

	devices, err := repo.FindByBoatIDs(ctx, []string{"127"})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "new", devices[0].FCMToken)

	require.NoError(t, repo.DeleteByTokens(ctx, []string{"new"}))
	devices, err = repo.FindByBoatIDs(ctx, []string{"127", "089"})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "089", devices[0].BoatID)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository([]*entity.User{{ID: uuid.New(), Email: "authority@tidewise.com", Role: entity.RoleAuthority}})

	u, err := repo.FindByEmail(context.Background(), "authority@tidewise.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAuthority, u.Role)

	_, err = repo.FindByEmail(context.Background(), "nobody@tidewise.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
