package query

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

// Client coordinates cached reads and invalidating writes over a Store.
type Client struct {
	store Store
	group singleflight.Group
	retry common.RetryOptions
	now   func() time.Time
}

// NewClient creates a query client over the given store.
func NewClient(store Store) *Client {
	return &Client{
		store: store,
		retry: common.RetryOptions{MaxAttempts: 3, InitialDelay: 200 * time.Millisecond},
		now:   time.Now,
	}
}

// Fetch returns the value for a key, serving the cache while it is
// within the resource's staleness window and refetching otherwise.
// Concurrent fetches for the same key share one in-flight request.
// Failed fetches are never cached.
func Fetch[T any](ctx context.Context, c *Client, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	keyStr := key.String()
	window := StaleAfter(key.Resource)

	if window > 0 {
		if entry, ok, err := c.store.Get(keyStr); err == nil && ok {
			if c.now().Sub(entry.FetchedAt) <= window {
				var cached T
				if err := json.Unmarshal(entry.Payload, &cached); err == nil {
					return cached, nil
				}
				// Undecodable cache entries fall through to a refetch.
			}
		}
	}

	payload, err, _ := c.group.Do(keyStr, func() (any, error) {
		var value T
		op := func() error {
			var fetchErr error
			value, fetchErr = fetch(ctx)
			return fetchErr
		}

		var fetchErr error
		if RetryEnabled(key.Resource) {
			fetchErr = common.WithRetry(ctx, op, c.retry)
		} else {
			fetchErr = op()
		}
		if fetchErr != nil {
			return nil, fetchErr
		}

		data, marshalErr := json.Marshal(value)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode cache payload for %s: %w", keyStr, marshalErr)
		}
		if setErr := c.store.Set(keyStr, data, c.now()); setErr != nil {
			// A cache write failure degrades to uncached behavior.
			common.LogError(setErr, "cache write failed", common.Fields{"key": keyStr})
		}
		return data, nil
	})
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(payload.([]byte), &value); err != nil {
		return zero, fmt.Errorf("%w: cached payload for %s: %v", common.ErrParse, keyStr, err)
	}
	return value, nil
}

// Mutate runs a write operation and, strictly after it succeeds,
// invalidates the caches the mutation class touches. The operation's
// error passes through untouched so the boundary notifier can classify
// it.
func (c *Client) Mutate(ctx context.Context, mutation Mutation, op func(context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}

	for _, resource := range Invalidates(mutation) {
		if err := c.store.InvalidatePrefix(string(resource)); err != nil {
			common.LogError(err, "cache invalidation failed", common.Fields{
				"mutation": string(mutation),
				"resource": string(resource),
			})
		}
	}
	return nil
}

// Invalidate drops all cached entries for a resource.
func (c *Client) Invalidate(resource Resource) error {
	return c.store.InvalidatePrefix(string(resource))
}

// Clear drops the whole cache.
func (c *Client) Clear() error {
	return c.store.Clear()
}

// Close releases the underlying store.
func (c *Client) Close() error {
	return c.store.Close()
}
