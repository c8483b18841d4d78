package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/view"
)

func newListCmd(app *App) *cobra.Command {
	var (
		query  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcard sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.cli.runList(cmd.Context(), query, asJSON)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show sets whose title, content or explanation contains this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the sets as JSON")
	return cmd
}

func newSearchCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search flashcard sets (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.cli.runList(cmd.Context(), args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the sets as JSON")
	return cmd
}

func (c *Cli) runList(ctx context.Context, query string, asJSON bool) error {
	all := c.repo.List(ctx)
	cards := all
	if query != "" {
		cards = c.repo.Search(ctx, query)
	}

	if asJSON {
		return c.printJSON(cards)
	}

	lv := view.BuildList(cards, len(all), query, nil)

	c.io.Println("=== Flashcards ===")
	c.io.Println()

	if lv.Status != "" {
		c.io.Println(lv.Status)
		c.io.Println()
	}

	if lv.ShowTutorial {
		c.io.Println("No flashcards found.")
		c.io.Println()
		c.io.Println("Use 'flashkeeper add' to create your first flashcard set,")
		c.io.Println("or 'flashkeeper import FILE' to load one from JSON.")
		return nil
	}

	for i, card := range lv.Cards {
		c.io.Printf("%d. %s [%s]\n", i+1, card.Title, card.Badge)
		c.io.Printf("   ID: %s\n", card.ID)
	}
	return nil
}

func (c *Cli) printJSON(cards []models.Flashcard) error {
	if cards == nil {
		cards = []models.Flashcard{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal flashcards: %w", err)
	}
	c.io.Println(string(data))
	return nil
}
