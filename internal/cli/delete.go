package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/flashkeeper/internal/view"
)

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a flashcard set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.cli.runDelete(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newDeleteManyCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-many ID ID...",
		Short: "Delete several flashcard sets at once",
		Args:  cobra.MinimumNArgs(view.MinBulkDelete),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.cli.runDeleteMany(cmd.Context(), args, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (c *Cli) runDelete(ctx context.Context, id string, yes bool) error {
	fc, ok := c.repo.Get(ctx, id)
	if !ok {
		// неизвестный id: молча ничего не делаем
		c.logger.Debug("delete: flashcard not found", "id", id)
		return nil
	}

	c.io.Println("=== Delete Flashcard ===")
	c.io.Println()
	c.io.Println("About to delete:")
	c.io.Printf("  Title:  %s\n", fc.DisplayTitle())
	c.io.Printf("  Fields: %d\n", fc.FieldCount())
	c.io.Println()

	if !yes {
		ok, err := c.confirm("Are you sure you want to delete this flashcard?")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete flashcard: %w", err)
	}
	return nil
}

func (c *Cli) runDeleteMany(ctx context.Context, ids []string, yes bool) error {
	sel := view.NewSelection()
	for _, id := range dedupe(ids) {
		sel.Toggle(id)
	}
	if !sel.BulkDeleteEnabled() {
		return fmt.Errorf("select at least %d different flashcards", view.MinBulkDelete)
	}

	c.io.Println("=== Delete Flashcards ===")
	c.io.Println()
	c.io.Printf("About to delete %d flashcard set(s).\n", sel.Len())
	c.io.Println()

	if !yes {
		ok, err := c.confirm("Are you sure you want to delete the selected flashcards?")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	removed, err := c.repo.DeleteMany(ctx, sel.IDs())
	if err != nil {
		return fmt.Errorf("failed to delete flashcards: %w", err)
	}
	c.io.Printf("Deleted %d flashcard set(s).\n", removed)
	return nil
}
