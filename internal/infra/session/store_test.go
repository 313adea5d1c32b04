package session

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(2*time.Hour, 5*time.Minute, slog.New(slog.DiscardHandler))
	t.Cleanup(store.Close)

	return store
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state := order.Initial("standard-trays")
	id, err := store.Create(ctx, state)
	require.NoError(t, err)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "standard-trays", got.SelectedMenuID)
}

func TestStore_GetUnknownSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestStore_UpdateReplacesState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, order.Initial("standard-trays"))
	require.NoError(t, err)

	next, err := store.Update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		return order.Reduce(state, order.SetNotes{Notes: "ring the side bell"}), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ring the side bell", next.AdditionalNotes)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ring the side bell", got.AdditionalNotes)
}

func TestStore_UpdateErrorLeavesStateUntouched(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, order.Initial("standard-trays"))
	require.NoError(t, err)

	_, err = store.Update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		state.AdditionalNotes = "should not stick"

		return state, errors.New("boom")
	})
	require.Error(t, err)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.AdditionalNotes)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, order.Initial("standard-trays"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))
	assert.ErrorIs(t, store.Delete(ctx, id), repository.ErrSessionNotFound)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestStore_ExpiredSessionReadsAsGone(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	id, err := store.Create(ctx, order.Initial("standard-trays"))
	require.NoError(t, err)

	current = current.Add(3 * time.Hour)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestStore_ActivitySlidesExpiration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	id, err := store.Create(ctx, order.Initial("standard-trays"))
	require.NoError(t, err)

	// Touch the session every 90 minutes; it must outlive the 2 hour TTL.
	for range 3 {
		current = current.Add(90 * time.Minute)
		_, err = store.Get(ctx, id)
		require.NoError(t, err)
	}
}

func TestStore_SweeperEvictsExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	_, err := store.Create(ctx, order.Initial("standard-trays"))
	require.NoError(t, err)
	keep, err := store.Create(ctx, order.Initial("standard-trays"))
	require.NoError(t, err)

	current = current.Add(time.Hour)
	_, err = store.Get(ctx, keep)
	require.NoError(t, err)

	current = current.Add(90 * time.Minute)
	assert.Equal(t, 1, store.evictExpired())

	_, err = store.Get(ctx, keep)
	require.NoError(t, err)
}
