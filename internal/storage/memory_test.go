package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.GetItem(ctx, KeyFlashcards)
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, m.SetItem(ctx, KeyFlashcards, []byte(`[]`)))
	got, err := m.GetItem(ctx, KeyFlashcards)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Возвращается копия, изменение не влияет на хранилище
	got[0] = 'x'
	again, err := m.GetItem(ctx, KeyFlashcards)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), again)

	require.NoError(t, m.RemoveItem(ctx, KeyFlashcards))
	require.NoError(t, m.RemoveItem(ctx, KeyFlashcards))
	_, err = m.GetItem(ctx, KeyFlashcards)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMemory_Closed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Close())

	_, err := m.GetItem(ctx, KeyTheme)
	assert.ErrorIs(t, err, ErrStorageClosed)
	assert.ErrorIs(t, m.SetItem(ctx, KeyTheme, []byte("dark")), ErrStorageClosed)
	assert.ErrorIs(t, m.RemoveItem(ctx, KeyTheme), ErrStorageClosed)
}
