package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/flashkeeper/internal/tui"
)

func newStudyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "study ID",
		Short: "Study a flashcard set in random order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fc, ok := app.cli.repo.Get(ctx, args[0])
			if !ok {
				return fmt.Errorf("flashcard not found with ID: %s", args[0])
			}
			return tui.RunStudy(ctx, app.tuiOptions(), fc)
		},
	}
}
