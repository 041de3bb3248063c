package keystore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	require.NoError(t, err)

	err = store.Add("key-1", "ABCDEF0123456789")
	require.NoError(t, err)

	got, err := store.Get("key-1")
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF0123456789", got)
}

func TestStoreGetMissing(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	got, err := store.Get("nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreDelete(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Add("key-1", "secret-1"))
	require.NoError(t, store.Add("key-2", "secret-2"))

	require.NoError(t, store.Delete("key-1"))

	got, err := store.Get("key-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = store.Get("key-2")
	require.NoError(t, err)
	assert.Equal(t, "secret-2", got)
}

func TestStoreDeleteAll(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Add("key-1", "secret-1"))
	require.NoError(t, store.DeleteAll())

	_, err = os.Stat(filepath.Join(dir, "api-keys.enc"))
	assert.True(t, os.IsNotExist(err))

	got, err := store.Get("key-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Add("key-1", "secret-1"))

	reopened, err := New(dir)
	require.NoError(t, err)

	got, err := reopened.Get("key-1")
	require.NoError(t, err)
	assert.Equal(t, "secret-1", got)
}

func TestStoreFileIsNotPlaintext(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Add("key-1", "SUPERSECRETVALUE"))

	raw, err := os.ReadFile(filepath.Join(dir, "api-keys.enc"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "SUPERSECRETVALUE")
}
