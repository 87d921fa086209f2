package query

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

type forecast struct {
	Months int     `json:"months"`
	Total  float64 `json:"total"`
}

func TestFetchCachesWithinWindow(t *testing.T) {
	c := NewClient(NewMemoryStore())
	key := NewKey(MLAdvancedForecast, "6")

	var calls int32
	fetch := func(ctx context.Context) (forecast, error) {
		atomic.AddInt32(&calls, 1)
		return forecast{Months: 6, Total: 1200}, nil
	}

	first, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, first.Total)

	second, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "fresh cache should be served without a refetch")
}

func TestFetchRefetchesAfterWindow(t *testing.T) {
	c := NewClient(NewMemoryStore())
	key := NewKey(MLAdvancedForecast)

	var calls int32
	fetch := func(ctx context.Context) (forecast, error) {
		atomic.AddInt32(&calls, 1)
		return forecast{Total: float64(atomic.LoadInt32(&calls))}, nil
	}

	_, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)

	// Shift the clock past the forecast window.
	c.now = func() time.Time { return time.Now().Add(StaleAfter(MLAdvancedForecast) + time.Minute) }

	got, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 2.0, got.Total)
}

func TestFetchZeroWindowAlwaysRefetches(t *testing.T) {
	c := NewClient(NewMemoryStore())
	key := NewKey(Transactions, "42")

	var calls int32
	fetch := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"groceries"}, nil
	}

	for i := 0; i < 3; i++ {
		_, err := Fetch(context.Background(), c, key, fetch)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "always-stale resources refetch on every read")
}

func TestFetchErrorsAreNotCached(t *testing.T) {
	c := NewClient(NewMemoryStore())
	key := NewKey(MLInsights)

	var calls int32
	fetch := func(ctx context.Context) (forecast, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return forecast{}, fmt.Errorf("%w: insights unavailable", common.ErrNotFound)
		}
		return forecast{Total: 99}, nil
	}

	_, err := Fetch(context.Background(), c, key, fetch)
	require.ErrorIs(t, err, common.ErrNotFound)

	entry, ok, storeErr := c.store.Get(key.String())
	require.NoError(t, storeErr)
	assert.False(t, ok, "failed fetch must leave no cache entry: %s", entry.Payload)

	got, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 99.0, got.Total)
}

func TestFetchAnalyticsNeverRetries(t *testing.T) {
	c := NewClient(NewMemoryStore())
	key := NewKey(MLPredictions)

	var calls int32
	fetch := func(ctx context.Context) (forecast, error) {
		atomic.AddInt32(&calls, 1)
		return forecast{}, fmt.Errorf("%w: connection refused", common.ErrNetwork)
	}

	_, err := Fetch(context.Background(), c, key, fetch)
	require.ErrorIs(t, err, common.ErrNetwork)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "analytics fetches fail fast even on retryable errors")
}

func TestFetchRetriesTransientErrors(t *testing.T) {
	c := NewClient(NewMemoryStore())
	c.retry.InitialDelay = time.Millisecond
	key := NewKey(Accounts, "42")

	var calls int32
	fetch := func(ctx context.Context) (forecast, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return forecast{}, fmt.Errorf("%w: upstream hiccup", common.ErrServerFailure)
		}
		return forecast{Total: 7}, nil
	}

	got, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Total)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchNoRetryOnClientError(t *testing.T) {
	c := NewClient(NewMemoryStore())
	key := NewKey(Budgets, "42")

	var calls int32
	fetch := func(ctx context.Context) (forecast, error) {
		atomic.AddInt32(&calls, 1)
		return forecast{}, fmt.Errorf("%w: bad month", common.ErrBadRequest)
	}

	_, err := Fetch(context.Background(), c, key, fetch)
	require.ErrorIs(t, err, common.ErrBadRequest)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchDeduplicatesConcurrentCalls(t *testing.T) {
	c := NewClient(NewMemoryStore())
	key := NewKey(MLHealthScore)

	var calls int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (forecast, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return forecast{Total: 88}, nil
	}

	const workers = 8
	results := make([]forecast, workers)
	errs := make([]error, workers)

	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i], errs[i] = Fetch(context.Background(), c, key, fetch)
		}(i)
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 88.0, results[i].Total)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent fetches for one key share a single request")
}

func TestMutateInvalidatesAfterSuccess(t *testing.T) {
	store := NewMemoryStore()
	c := NewClient(store)
	now := time.Now()

	seed := []Resource{Transactions, Accounts, Budgets, Goals}
	for _, r := range seed {
		require.NoError(t, store.Set(string(r)+":42", []byte(`{}`), now))
	}

	err := c.Mutate(context.Background(), MutateTransaction, func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	for _, r := range []Resource{Transactions, Accounts, Budgets} {
		_, ok, getErr := store.Get(string(r) + ":42")
		require.NoError(t, getErr)
		assert.False(t, ok, "%s cache should be invalidated", r)
	}
	_, ok, getErr := store.Get(string(Goals) + ":42")
	require.NoError(t, getErr)
	assert.True(t, ok, "goals cache must survive a transaction mutation")
}

func TestMutateFailureLeavesCacheIntact(t *testing.T) {
	store := NewMemoryStore()
	c := NewClient(store)
	require.NoError(t, store.Set(string(Transactions)+":42", []byte(`{}`), time.Now()))

	opErr := errors.New("insert rejected")
	err := c.Mutate(context.Background(), MutateTransaction, func(ctx context.Context) error {
		return opErr
	})
	require.ErrorIs(t, err, opErr)

	_, ok, getErr := store.Get(string(Transactions) + ":42")
	require.NoError(t, getErr)
	assert.True(t, ok, "a failed mutation must not invalidate anything")
}

func TestMutateTrainModelInvalidatesAllAnalytics(t *testing.T) {
	store := NewMemoryStore()
	c := NewClient(store)
	now := time.Now()

	for _, r := range mlResources {
		require.NoError(t, store.Set(string(r), []byte(`{}`), now))
	}
	require.NoError(t, store.Set(string(Transactions)+":42", []byte(`{}`), now))

	err := c.Mutate(context.Background(), MutateTrainModel, func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	for _, r := range mlResources {
		_, ok, getErr := store.Get(string(r))
		require.NoError(t, getErr)
		assert.False(t, ok, "%s should be invalidated by training", r)
	}
	_, ok, getErr := store.Get(string(Transactions) + ":42")
	require.NoError(t, getErr)
	assert.True(t, ok, "training leaves non-analytics caches alone")
}

func TestFetchCorruptCacheEntryRefetches(t *testing.T) {
	store := NewMemoryStore()
	c := NewClient(store)
	key := NewKey(MLBenchmark)
	require.NoError(t, store.Set(key.String(), []byte("not-json"), time.Now()))

	var calls int32
	fetch := func(ctx context.Context) (forecast, error) {
		atomic.AddInt32(&calls, 1)
		return forecast{Total: 5}, nil
	}

	got, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Total)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvalidatePrefixMatchesWholeSegments(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	require.NoError(t, store.Set("transactions", []byte(`{}`), now))
	require.NoError(t, store.Set("transactions:42", []byte(`{}`), now))
	require.NoError(t, store.Set("transactions-archive", []byte(`{}`), now))

	require.NoError(t, store.InvalidatePrefix("transactions"))

	_, ok, _ := store.Get("transactions")
	assert.False(t, ok)
	_, ok, _ = store.Get("transactions:42")
	assert.False(t, ok)
	_, ok, _ = store.Get("transactions-archive")
	assert.True(t, ok, "prefix invalidation must not cross key segments")
}

func TestStalenessWindows(t *testing.T) {
	tests := []struct {
		resource Resource
		window   time.Duration
	}{
		{Transactions, 0},
		{Budgets, 0},
		{Accounts, 0},
		{Categories, 0},
		{MLHealth, 5 * time.Minute},
		{MLPredictions, 10 * time.Minute},
		{MLAdvancedForecast, 30 * time.Minute},
		{MLHealthScore, 24 * time.Hour},
		{MLBenchmark, 7 * 24 * time.Hour},
		{MLBudgetRecommendations, time.Hour},
		{MLBudgetAlerts, 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(string(tt.resource), func(t *testing.T) {
			assert.Equal(t, tt.window, StaleAfter(tt.resource))
		})
	}
}

func TestRetryEnabled(t *testing.T) {
	assert.True(t, RetryEnabled(Transactions))
	assert.True(t, RetryEnabled(Accounts))
	assert.False(t, RetryEnabled(Categories), "the category list is static seed data")
	for _, r := range mlResources {
		assert.False(t, RetryEnabled(r), "%s", r)
	}
}
