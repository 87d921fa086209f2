package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, err)

	_, err = storage.Get(TokenKey)
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	require.NoError(t, storage.Set(TokenKey, "jwt-abc"))
	got, err := storage.Get(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", got)

	require.NoError(t, storage.Set(TokenKey, "jwt-new"))
	got, err = storage.Get(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "jwt-new", got)

	require.NoError(t, storage.Delete(TokenKey))
	_, err = storage.Get(TokenKey)
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.True(t, errors.Is(storage.Delete(TokenKey), ErrKeyNotFound))
}

func TestFileStorageRejectsPathKeys(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Get("../escape")
	assert.Error(t, err)
	assert.Error(t, storage.Set("a/b", "v"))
	assert.Error(t, storage.Set("", "v"))
}

func TestFileStorageBacksSessionStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	store := NewStore(storage)
	require.NoError(t, store.SaveLogin(testAuth()))

	reopened, err := NewFileStorage(dir)
	require.NoError(t, err)
	assert.True(t, NewStore(reopened).Authenticated())
}
