package query

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	fetchedAt := time.Now().Truncate(time.Second)

	require.NoError(t, store.Set("budgets:42", []byte(`[{"id":1}]`), fetchedAt))

	entry, ok, err := store.Get("budgets:42")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), entry.Payload)
	assert.True(t, entry.FetchedAt.Equal(fetchedAt))

	_, ok, err = store.Get("budgets:7")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreUpsert(t *testing.T) {
	store := newTestSQLiteStore(t)
	first := time.Now().Add(-time.Hour).Truncate(time.Second)
	second := time.Now().Truncate(time.Second)

	require.NoError(t, store.Set("ml-health", []byte(`{"v":1}`), first))
	require.NoError(t, store.Set("ml-health", []byte(`{"v":2}`), second))

	entry, ok, err := store.Get("ml-health")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":2}`), entry.Payload)
	assert.True(t, entry.FetchedAt.Equal(second))
}

func TestSQLiteStoreInvalidatePrefix(t *testing.T) {
	store := newTestSQLiteStore(t)
	now := time.Now()

	require.NoError(t, store.Set("transactions", []byte(`{}`), now))
	require.NoError(t, store.Set("transactions:42", []byte(`{}`), now))
	require.NoError(t, store.Set("transactions:42:2026-01", []byte(`{}`), now))
	require.NoError(t, store.Set("accounts:42", []byte(`{}`), now))

	require.NoError(t, store.InvalidatePrefix("transactions"))

	for _, key := range []string{"transactions", "transactions:42", "transactions:42:2026-01"} {
		_, ok, err := store.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "%s should be gone", key)
	}

	_, ok, err := store.Get("accounts:42")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	fetchedAt := time.Now().Truncate(time.Second)

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("ml-benchmark", []byte(`{"cohort":"25-34"}`), fetchedAt))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entry, ok, err := reopened.Get("ml-benchmark")
	require.NoError(t, err)
	require.True(t, ok, "cache entries must outlive the process")
	assert.Equal(t, []byte(`{"cohort":"25-34"}`), entry.Payload)
	assert.True(t, entry.FetchedAt.Equal(fetchedAt))
}

func TestSQLiteStoreClear(t *testing.T) {
	store := newTestSQLiteStore(t)
	now := time.Now()

	require.NoError(t, store.Set("goals:42", []byte(`{}`), now))
	require.NoError(t, store.Set("bills:42", []byte(`{}`), now))
	require.NoError(t, store.Clear())

	for _, key := range []string{"goals:42", "bills:42"} {
		_, ok, err := store.Get(key)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}
