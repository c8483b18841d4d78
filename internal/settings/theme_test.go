package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/flashkeeper/internal/storage"
)

func TestThemes_DefaultFollowsBackground(t *testing.T) {
	ctx := context.Background()

	dark := NewThemesWithDetector(storage.NewMemory(), func() bool { return true })
	assert.Equal(t, ThemeDark, dark.Current(ctx))

	light := NewThemesWithDetector(storage.NewMemory(), func() bool { return false })
	assert.Equal(t, ThemeLight, light.Current(ctx))
}

func TestThemes_ToggleAndPersist(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	themes := NewThemesWithDetector(kv, func() bool { return false })

	got, err := themes.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	raw, err := kv.GetItem(ctx, storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(raw))

	// новый экземпляр видит сохраненную тему
	again := NewThemesWithDetector(kv, func() bool { return false })
	assert.Equal(t, ThemeDark, again.Current(ctx))

	got, err = again.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)
}

func TestThemes_InvalidStoredValue(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.SetItem(ctx, storage.KeyTheme, []byte("purple")))

	themes := NewThemesWithDetector(kv, func() bool { return true })
	assert.Equal(t, ThemeDark, themes.Current(ctx))
}

func TestThemes_SetRejectsUnknown(t *testing.T) {
	themes := NewThemesWithDetector(storage.NewMemory(), nil)
	err := themes.Set(context.Background(), Theme("purple"))
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme("light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)

	_, err = ParseTheme("")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestThemes_Reset(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	themes := NewThemesWithDetector(kv, func() bool { return true })

	require.NoError(t, themes.Set(ctx, ThemeLight))
	require.Equal(t, ThemeLight, themes.Current(ctx))

	require.NoError(t, themes.Reset(ctx))
	assert.Equal(t, ThemeDark, themes.Current(ctx))

	_, err := kv.GetItem(ctx, storage.KeyTheme)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// повторный сброс не ошибка
	assert.NoError(t, themes.Reset(ctx))
}
