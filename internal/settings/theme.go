// Package settings keeps user preferences in the key-value store.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/flashkeeper/internal/storage"
)

// Theme is the color scheme preference.
type Theme string

// Themes
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrUnknownTheme is returned for a theme name other than light or dark
var ErrUnknownTheme = errors.New("unknown theme")

// ParseTheme validates a theme name
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Opposite returns the other theme
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Themes stores the theme preference under storage.KeyTheme.
type Themes struct {
	kv             storage.KeyValueStorage
	darkBackground func() bool
}

// NewThemes creates a theme store. Без сохраненного значения тема
// определяется по фону терминала.
func NewThemes(kv storage.KeyValueStorage) *Themes {
	return &Themes{kv: kv, darkBackground: lipgloss.HasDarkBackground}
}

// NewThemesWithDetector is NewThemes with a custom background detector
func NewThemesWithDetector(kv storage.KeyValueStorage, darkBackground func() bool) *Themes {
	return &Themes{kv: kv, darkBackground: darkBackground}
}

// Current returns the stored theme, or the terminal default when nothing
// valid is stored.
func (t *Themes) Current(ctx context.Context) Theme {
	raw, err := t.kv.GetItem(ctx, storage.KeyTheme)
	if err == nil {
		if theme, perr := ParseTheme(string(raw)); perr == nil {
			return theme
		}
	}
	return t.Default()
}

// Default returns the theme that matches the terminal background
func (t *Themes) Default() Theme {
	if t.darkBackground != nil && t.darkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// Set persists theme
func (t *Themes) Set(ctx context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := t.kv.SetItem(ctx, storage.KeyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Toggle switches to the opposite theme, persists and returns it
func (t *Themes) Toggle(ctx context.Context) (Theme, error) {
	next := t.Current(ctx).Opposite()
	if err := t.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Reset forgets the stored theme; Current follows the terminal again
func (t *Themes) Reset(ctx context.Context) error {
	if err := t.kv.RemoveItem(ctx, storage.KeyTheme); err != nil {
		return fmt.Errorf("failed to reset theme: %w", err)
	}
	return nil
}
