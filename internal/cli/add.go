package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/validation"
)

// cardInput значения флагов add/update
type cardInput struct {
	title    string
	fields   []string
	hasTitle bool
}

func newAddCmd(app *App) *cobra.Command {
	var in cardInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a flashcard set",
		Long: `Create a flashcard set.

Missing values are asked for interactively. Each --field is
CONTENT::EXPLANATION, e.g. --field 'hola::hello'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.hasTitle = cmd.Flags().Changed("title")
			return app.cli.runAdd(cmd.Context(), in)
		},
	}
	cmd.Flags().StringVarP(&in.title, "title", "t", "", "Title of the set")
	cmd.Flags().StringArrayVarP(&in.fields, "field", "f", nil, "Field as CONTENT::EXPLANATION (repeatable)")
	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	var in cardInput

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace the title and/or fields of a flashcard set",
		Long: `Replace the title and/or fields of a flashcard set.

--field replaces all fields. Without flags the new values are asked for
interactively; an empty answer keeps the current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.hasTitle = cmd.Flags().Changed("title")
			return app.cli.runUpdate(cmd.Context(), args[0], in)
		},
	}
	cmd.Flags().StringVarP(&in.title, "title", "t", "", "New title")
	cmd.Flags().StringArrayVarP(&in.fields, "field", "f", nil, "Field as CONTENT::EXPLANATION (repeatable, replaces all)")
	return cmd
}

func (c *Cli) runAdd(ctx context.Context, in cardInput) error {
	c.io.Println("=== Add Flashcard ===")
	c.io.Println()

	title := in.title
	if !in.hasTitle {
		var err error
		title, err = c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}

	fields, err := parseFieldFlags(in.fields)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		fields, err = c.readFields()
		if err != nil {
			return err
		}
	}

	if err := validation.ValidateDraft(title, fields); err != nil {
		return fmt.Errorf("invalid flashcard: %w", err)
	}

	fc, err := c.repo.Create(ctx, title, fields)
	if err != nil {
		return fmt.Errorf("failed to create flashcard: %w", err)
	}

	c.io.Printf("ID: %s\n", fc.ID)
	return nil
}

func (c *Cli) runUpdate(ctx context.Context, id string, in cardInput) error {
	fc, ok := c.repo.Get(ctx, id)
	if !ok {
		return fmt.Errorf("flashcard not found with ID: %s", id)
	}

	c.io.Println("=== Update Flashcard ===")
	c.io.Println()

	interactive := !in.hasTitle && len(in.fields) == 0

	title := fc.Title
	if in.hasTitle {
		title = in.title
	} else if interactive {
		answer, err := c.io.ReadInput(fmt.Sprintf("Title [%s]: ", fc.Title))
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		if answer != "" {
			title = answer
		}
	}

	fields := fc.Fields
	if len(in.fields) > 0 {
		parsed, err := parseFieldFlags(in.fields)
		if err != nil {
			return err
		}
		fields = parsed
	} else if interactive {
		c.io.Printf("Current set has %d field(s). Enter new fields or leave empty to keep them.\n", len(fc.Fields))
		entered, err := c.readFields()
		if err != nil {
			return err
		}
		if len(entered) > 0 {
			fields = entered
		}
	}

	if err := validation.ValidateDraft(title, fields); err != nil {
		return fmt.Errorf("invalid flashcard: %w", err)
	}

	if _, err := c.repo.Update(ctx, id, title, fields); err != nil {
		return fmt.Errorf("failed to update flashcard: %w", err)
	}
	return nil
}

// readFields спрашивает пары content/explanation до пустого content
func (c *Cli) readFields() ([]models.Field, error) {
	var fields []models.Field
	for i := 1; ; i++ {
		content, err := c.io.ReadInput(fmt.Sprintf("Field %d content (empty to finish): ", i))
		if err != nil {
			return nil, fmt.Errorf("failed to read content: %w", err)
		}
		if content == "" {
			return fields, nil
		}

		explanation, err := c.io.ReadInput(fmt.Sprintf("Field %d explanation: ", i))
		if err != nil {
			return nil, fmt.Errorf("failed to read explanation: %w", err)
		}
		fields = append(fields, models.Field{Content: content, Explanation: explanation})
	}
}
