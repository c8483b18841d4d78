package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iudanet/flashkeeper/internal/settings"
	"github.com/iudanet/flashkeeper/internal/view"
)

// Palette. AdaptiveColor picks the variant from lipgloss's dark-background
// flag, which applyTheme sets from the stored theme.
func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorCardBorder lipgloss.TerminalColor = ac("250", "243")
	colorSuccess    lipgloss.TerminalColor = ac("28", "78")
	colorError      lipgloss.TerminalColor = ac("160", "203")
	colorToastBg    lipgloss.TerminalColor = ac("254", "236")
)

// applyTheme switches the adaptive palette
func applyTheme(theme settings.Theme) {
	lipgloss.SetHasDarkBackground(theme == settings.ThemeDark)
}

// applyColorProfile honors NO_COLOR and otherwise follows the terminal
func applyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccentFg).
		Background(colorAccent).
		Padding(0, 1)
}

func styleCard(current bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if current {
		return st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st
}

func styleBadge() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func styleModal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(1, 2)
}

func styleToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorSuccess).
		Background(colorToastBg).
		Padding(0, 1)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

// styleTier maps a slide font tier to a terminal style: a terminal has one
// font size, so larger tiers get more padding and emphasis.
func styleTier(t view.FontTier) lipgloss.Style {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Align(lipgloss.Center)

	switch {
	case t >= view.Tier7XL:
		return st.Bold(true).Padding(3, 8)
	case t >= view.Tier4XL:
		return st.Bold(true).Padding(2, 6)
	case t >= view.Tier2XL:
		return st.Padding(1, 4)
	default:
		return st.Padding(1, 2)
	}
}
