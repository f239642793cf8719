package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Service implements lazy cache-aside: readers populate the store through
// GetOrSet, writers only invalidate. Concurrent misses for the same key are
// not coordinated; redundant fetches are an accepted trade-off.
type Service struct {
	store  Store
	logger *logrus.Logger
}

func NewService(store Store, logger *logrus.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// GetOrSet returns the cached value under key, or fetches, stores and returns
// the authoritative value on a miss.
//
// When skip is true the store is neither read nor written and fetch is called
// directly; callers use it for requests whose parameters make memoization
// unsafe, such as arbitrary date ranges. Store and fetch failures propagate
// unchanged: an unreachable store is never treated as a miss.
func GetOrSet[T any](ctx context.Context, c *Service, key string, ttl time.Duration, skip bool, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if skip {
		return fetch(ctx)
	}

	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if found {
		var cached T
		if err := json.Unmarshal(raw, &cached); err != nil {
			return zero, err
		}
		return cached, nil
	}

	result, err := fetch(ctx)
	if err != nil {
		return zero, err
	}
	b, err := json.Marshal(result)
	if err != nil {
		return zero, err
	}
	if err := c.store.Set(ctx, key, b, ttl); err != nil {
		return zero, err
	}
	return result, nil
}

// Invalidate deletes one key. Deleting an absent key is not an error.
func (c *Service) Invalidate(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

// InvalidateMany deletes the given keys concurrently. Every key is attempted
// regardless of individual failures; the errors, if any, are joined.
func (c *Service) InvalidateMany(ctx context.Context, keys []string) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, key := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			if err := c.store.Delete(ctx, k); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(key)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// InvalidatePattern deletes every key matching a glob-style pattern, e.g. all
// cached list pages of one user.
func (c *Service) InvalidatePattern(ctx context.Context, pattern string) error {
	return c.store.DeleteByPattern(ctx, pattern)
}
