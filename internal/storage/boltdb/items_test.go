package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/flashkeeper/internal/storage"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "items_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestSetGetRemoveItem(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Изначально ключа нет
	_, err := store.GetItem(ctx, storage.KeyFlashcards)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	value := []byte(`[{"id":"a","title":"Spanish","fields":[]}]`)
	require.NoError(t, store.SetItem(ctx, storage.KeyFlashcards, value))

	got, err := store.GetItem(ctx, storage.KeyFlashcards)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// Перезапись заменяет значение целиком
	require.NoError(t, store.SetItem(ctx, storage.KeyFlashcards, []byte(`[]`)))
	got, err = store.GetItem(ctx, storage.KeyFlashcards)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.RemoveItem(ctx, storage.KeyFlashcards))
	_, err = store.GetItem(ctx, storage.KeyFlashcards)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// Повторное удаление не является ошибкой
	assert.NoError(t, store.RemoveItem(ctx, storage.KeyFlashcards))
}

func TestItemsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SetItem(ctx, storage.KeyFlashcards, []byte(`[]`)))
	require.NoError(t, store.SetItem(ctx, storage.KeyTheme, []byte("dark")))

	theme, err := store.GetItem(ctx, storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(theme))

	require.NoError(t, store.RemoveItem(ctx, storage.KeyTheme))
	cards, err := store.GetItem(ctx, storage.KeyFlashcards)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(cards))
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SetItem(ctx, storage.KeyTheme, []byte("light")))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	got, err := reopened.GetItem(ctx, storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", string(got))
}

func TestGetItem_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Удаляем bucket напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketItems)
	})
	require.NoError(t, err)

	_, err = store.GetItem(ctx, storage.KeyFlashcards)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "items bucket not found")

	err = store.SetItem(ctx, storage.KeyFlashcards, []byte(`[]`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "items bucket not found")
}

func TestClosedStorage(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.GetItem(ctx, storage.KeyFlashcards)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SetItem(ctx, storage.KeyFlashcards, nil), storage.ErrStorageClosed)
}
