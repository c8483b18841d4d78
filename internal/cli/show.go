package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/settings"
)

const markdownWidth = 80

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one flashcard set with all its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.cli.runShow(cmd.Context(), args[0])
		},
	}
}

func (c *Cli) runShow(ctx context.Context, id string) error {
	fc, ok := c.repo.Get(ctx, id)
	if !ok {
		return fmt.Errorf("flashcard not found with ID: %s", id)
	}

	out, err := c.renderMarkdown(ctx, flashcardMarkdown(fc))
	if err != nil {
		return err
	}
	_, err = c.io.Write([]byte(out))
	return err
}

// renderMarkdown рендерит через glamour; вне терминала без ANSI-стилей
func (c *Cli) renderMarkdown(ctx context.Context, md string) (string, error) {
	style := "notty"
	if c.io.IsTerminal() {
		style = string(settings.ThemeLight)
		if c.themes != nil && c.themes.Current(ctx) == settings.ThemeDark {
			style = string(settings.ThemeDark)
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func flashcardMarkdown(fc models.Flashcard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", fc.DisplayTitle())
	fmt.Fprintf(&b, "`%s` · %d FLASHCARD · updated %s\n\n",
		fc.ID, fc.FieldCount(), fc.UpdatedAt.Format("2006-01-02 15:04"))

	if len(fc.Fields) == 0 {
		b.WriteString("_This set has no fields._\n")
		return b.String()
	}

	for i, f := range fc.Fields {
		fmt.Fprintf(&b, "## %d. %s\n\n%s\n\n", i+1, f.Content, f.Explanation)
	}
	return b.String()
}
