package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/flashkeeper/internal/models"
)

// Run starts the interactive application
func Run(ctx context.Context, opts Options) error {
	applyColorProfile()
	m := New(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// RunStudy starts a study session for fc only
func RunStudy(ctx context.Context, opts Options, fc models.Flashcard) error {
	applyColorProfile()
	m := NewStudy(ctx, opts, fc)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
