package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyStore wraps a MemoryStore and records every call so tests can assert on
// what the policy engine touched.
type spyStore struct {
	inner *MemoryStore

	mu        sync.Mutex
	gets      int
	sets      int
	deletes   []string
	lastTTL   time.Duration
	getErr    error
	setErr    error
	deleteErr map[string]error
}

func newSpyStore() *spyStore {
	return &spyStore{inner: NewMemoryStore(), deleteErr: map[string]error{}}
}

func (s *spyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	s.gets++
	s.mu.Unlock()
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	return s.inner.Get(ctx, key)
}

func (s *spyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	s.sets++
	s.lastTTL = ttl
	s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	return s.inner.Set(ctx, key, value, ttl)
}

func (s *spyStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	s.deletes = append(s.deletes, key)
	err := s.deleteErr[key]
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.inner.Delete(ctx, key)
}

func (s *spyStore) DeleteByPattern(ctx context.Context, pattern string) error {
	return s.inner.DeleteByPattern(ctx, pattern)
}

func newTestService(store Store) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(store, logger)
}

func TestGetOrSet_SkipBypassesStore(t *testing.T) {
	store := newSpyStore()
	svc := newTestService(store)

	fetches := 0
	got, err := GetOrSet(context.Background(), svc, "k", time.Minute, true, func(context.Context) (int, error) {
		fetches++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 0, store.gets, "skip must not read the store")
	assert.Equal(t, 0, store.sets, "skip must not write the store")
}

func TestGetOrSet_MissFetchesOnceAndStores(t *testing.T) {
	store := newSpyStore()
	svc := newTestService(store)

	fetches := 0
	got, err := GetOrSet(context.Background(), svc, "k", 30*time.Second, false, func(context.Context) (string, error) {
		fetches++
		return "value", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 1, store.sets)
	assert.Equal(t, 30*time.Second, store.lastTTL)

	// Second read is a hit and must not fetch again.
	got, err = GetOrSet(context.Background(), svc, "k", 30*time.Second, false, func(context.Context) (string, error) {
		fetches++
		return "other", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, fetches, "hit must not call fetch")
}

func TestGetOrSet_HitReturnsStructuralCopy(t *testing.T) {
	type balance struct {
		Income  string `json:"income"`
		Expense string `json:"expense"`
	}
	store := newSpyStore()
	svc := newTestService(store)

	orig := balance{Income: "1000", Expense: "200"}
	_, err := GetOrSet(context.Background(), svc, "b", time.Minute, false, func(context.Context) (balance, error) {
		return orig, nil
	})
	require.NoError(t, err)

	got, err := GetOrSet(context.Background(), svc, "b", time.Minute, false, func(context.Context) (balance, error) {
		t.Fatal("fetch called on hit")
		return balance{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestGetOrSet_FetchErrorPropagatesWithoutWrite(t *testing.T) {
	store := newSpyStore()
	svc := newTestService(store)

	wantErr := errors.New("db down")
	_, err := GetOrSet(context.Background(), svc, "k", time.Minute, false, func(context.Context) (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, store.sets, "failed fetch must not be cached")
}

func TestGetOrSet_StoreErrorIsNotAMiss(t *testing.T) {
	store := newSpyStore()
	store.getErr = errors.New("redis unreachable")
	svc := newTestService(store)

	fetches := 0
	_, err := GetOrSet(context.Background(), svc, "k", time.Minute, false, func(context.Context) (int, error) {
		fetches++
		return 1, nil
	})
	assert.ErrorIs(t, err, store.getErr)
	assert.Equal(t, 0, fetches, "store outage must propagate, not mask as a miss")
}

func TestInvalidate_AbsentKeyIsIdempotent(t *testing.T) {
	store := newSpyStore()
	svc := newTestService(store)

	assert.NoError(t, svc.Invalidate(context.Background(), "never-set"))
}

func TestInvalidateMany_DeletesAllDespiteFailure(t *testing.T) {
	store := newSpyStore()
	store.deleteErr["k2"] = errors.New("boom")
	svc := newTestService(store)

	ctx := context.Background()
	for _, k := range []string{"k1", "k2", "k3"} {
		require.NoError(t, store.inner.Set(ctx, k, []byte("x"), 0))
	}

	err := svc.InvalidateMany(ctx, []string{"k1", "k2", "k3"})
	assert.Error(t, err)
	assert.ElementsMatch(t, []string{"k1", "k2", "k3"}, store.deletes, "every key must be attempted")

	_, found, _ := store.inner.Get(ctx, "k1")
	assert.False(t, found)
	_, found, _ = store.inner.Get(ctx, "k3")
	assert.False(t, found)
}

func TestInvalidatePattern_RemovesMatchingKeysOnly(t *testing.T) {
	store := newSpyStore()
	svc := newTestService(store)

	ctx := context.Background()
	require.NoError(t, store.inner.Set(ctx, ListKey("u1", 1, 10), []byte("a"), 0))
	require.NoError(t, store.inner.Set(ctx, ListKey("u1", 2, 10), []byte("b"), 0))
	require.NoError(t, store.inner.Set(ctx, ListKey("u2", 1, 10), []byte("c"), 0))
	require.NoError(t, store.inner.Set(ctx, BalanceKey("u1"), []byte("d"), 0))

	require.NoError(t, svc.InvalidatePattern(ctx, ListPattern("u1")))

	_, found, _ := store.inner.Get(ctx, ListKey("u1", 1, 10))
	assert.False(t, found)
	_, found, _ = store.inner.Get(ctx, ListKey("u1", 2, 10))
	assert.False(t, found)
	_, found, _ = store.inner.Get(ctx, ListKey("u2", 1, 10))
	assert.True(t, found, "other users' pages must survive")
	_, found, _ = store.inner.Get(ctx, BalanceKey("u1"))
	assert.True(t, found, "balance key is outside the list pattern")
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "cash-flow:list:u1:2:10", ListKey("u1", 2, 10))
	assert.Equal(t, "cash-flow:balance:u1", BalanceKey("u1"))
	assert.Equal(t, "cash-flow:list:u1:*", ListPattern("u1"))
}
