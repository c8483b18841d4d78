package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iudanet/flashkeeper/internal/transfer"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all flashcard sets to flashcards.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dir") {
				dir = app.cfg.Export.Dir
			}
			return app.cli.runExport(cmd.Context(), dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for flashcards.json (default from config export.dir)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Append flashcard sets from a JSON file",
		Long: `Append flashcard sets from a JSON file.

The file must be an array of {"title": string, "fields": [{"content":
string, "explanation": string}]}. Imported sets get new ids and are added
after the existing ones; nothing is de-duplicated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.cli.runImport(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (c *Cli) runExport(ctx context.Context, dir string) error {
	path, err := c.exporter.Export(ctx, dir)
	if errors.Is(err, transfer.ErrNothingToExport) {
		return nil
	}
	if err != nil {
		return err
	}
	c.io.Printf("Written: %s\n", path)
	return nil
}

func (c *Cli) runImport(ctx context.Context, path string, yes bool) error {
	dialog := transfer.NewDialog(c.repo)
	name := filepath.Base(path)

	data, err := transfer.ReadFile(path)
	if err != nil {
		dialog.Fail(name, err)
		c.io.Println(dialog.Status())
		return err
	}

	dialog.Load(name, data)
	c.io.Println(dialog.Status())
	if !dialog.CanConfirm() {
		return fmt.Errorf("import rejected: %w", dialog.Err())
	}

	if !yes {
		ok, err := c.confirm(fmt.Sprintf("Import %d flashcard set(s)?", dialog.Records()))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Import cancelled.")
			return nil
		}
	}

	// файл перечитывается: он мог измениться после проверки
	data, err = transfer.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := dialog.Confirm(ctx, data); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return nil
}
