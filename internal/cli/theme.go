package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/flashkeeper/internal/settings"
)

const (
	themeToggle = "toggle"
	themeReset  = "reset"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle|reset]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(settings.ThemeLight), string(settings.ThemeDark), themeToggle, themeReset},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return app.cli.runTheme(cmd.Context(), arg)
		},
	}
}

func (c *Cli) runTheme(ctx context.Context, arg string) error {
	theme := c.themes.Current(ctx)

	switch arg {
	case "":
	case themeToggle:
		next, err := c.themes.Toggle(ctx)
		if err != nil {
			return err
		}
		theme = next
	case themeReset:
		if err := c.themes.Reset(ctx); err != nil {
			return err
		}
		theme = c.themes.Current(ctx)
	default:
		parsed, err := settings.ParseTheme(arg)
		if err != nil {
			return err
		}
		if err := c.themes.Set(ctx, parsed); err != nil {
			return err
		}
		theme = parsed
	}

	c.io.Printf("Theme: %s\n", theme)
	return nil
}
