package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/navigation"
)

var serum = catalog.Product{ID: "1", Name: "Serum", Price: decimal.RequireFromString("34.99"), Stock: 45}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	s := New("abc")
	s.Cart.AddItem(serum, 2, "", "")
	s.Nav.Dispatch(navigation.SubmitSearch{Query: "serum"})
	s.Checkout.Step = checkout.StepShipping
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Cart.TotalItems())
	assert.Equal(t, navigation.Search{Query: "serum"}, got.Nav.Page())
	assert.Equal(t, checkout.StepShipping, got.Checkout.Current())

	got.Cart.Clear()
	again, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Cart.TotalItems(), "stored copy is isolated")

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, New("a")))
	_, err := store.Get(ctx, "a")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestDecode_FillsMissingParts(t *testing.T) {
	s, err := Decode([]byte(`{"id":"x"}`))
	require.NoError(t, err)

	assert.Equal(t, navigation.Home{}, s.Nav.Page())
	assert.True(t, s.Cart.IsEmpty())
	assert.Equal(t, checkout.StepContact, s.Checkout.Current())
}

func TestManager_LoadUnknownReturnsFresh(t *testing.T) {
	m := NewManager(NewMemoryStore(0), nil)

	s, err := m.Load(context.Background(), "new")
	require.NoError(t, err)
	assert.Equal(t, "new", s.ID)
	assert.True(t, s.Cart.IsEmpty())
}

func TestManager_UpdateErrorDoesNotSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	m := NewManager(store, nil)

	_, err := m.Update(ctx, "s1", func(s *Session) error {
		s.Cart.AddItem(serum, 1, "", "")
		return errors.New("rejected")
	})
	assert.EqualError(t, err, "rejected")

	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(0), nil)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Update(ctx, "shared", func(s *Session) error {
				s.Cart.AddItem(serum, 1, "", "")
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	s, err := m.Load(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, workers, s.Cart.TotalItems())
	assert.Equal(t, 0, m.locks.size())
}

type failingStore struct{ *MemoryStore }

func (failingStore) Save(context.Context, *Session) error {
	return errors.New("disk full")
}

func TestManager_SaveFailure(t *testing.T) {
	m := NewManager(failingStore{NewMemoryStore(0)}, nil)

	_, err := m.Update(context.Background(), "s", func(*Session) error { return nil })
	assert.ErrorContains(t, err, "disk full")
}
