// Package transfer imports and exports flashcards as JSON files.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/flashkeeper/internal/notify"
	"github.com/iudanet/flashkeeper/pkg/api"
)

// Status lines of the import dialog
const (
	StatusParseFailed    = "Failed to parse JSON file"
	StatusInvalidShape   = "Invalid structure, please check your JSON file"
	statusValidTemplate  = "File \"%s\" is valid"
	exportFilePermission = 0o644
)

// Repository is the part of the flashcard repository used for transfer.
type Repository interface {
	Import(ctx context.Context, records []api.FlashcardRecord) (int, error)
	Export(ctx context.Context) []api.FlashcardRecord
}

// Exporter writes the collection to <dir>/flashcards.json.
type Exporter struct {
	repo     Repository
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewExporter creates an exporter
func NewExporter(repo Repository, notifier notify.Notifier, logger *slog.Logger) *Exporter {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{repo: repo, notifier: notifier, logger: logger}
}

// Export writes every flashcard as {title, fields} into dir and returns
// the file path. An empty collection produces no file: the "nothing to
// export" message is sent and ErrNothingToExport returned.
func (e *Exporter) Export(ctx context.Context, dir string) (string, error) {
	records := e.repo.Export(ctx)
	if len(records) == 0 {
		e.notifier.Notify(notify.MsgNothingExport)
		return "", ErrNothingToExport
	}

	data, err := Encode(records)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(dir, api.ExportFileName)
	if err := os.WriteFile(path, data, exportFilePermission); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	e.logger.Info("flashcards exported", "path", path, "count", len(records))
	e.notifier.Notify(notify.MsgExported)
	return path, nil
}

// Dialog is the import dialog controller: a file is loaded, checked, and
// merged into the collection only on confirm.
type Dialog struct {
	repo    Repository
	err     error
	name    string
	status  string
	records int
}

// NewDialog creates a closed, empty import dialog
func NewDialog(repo Repository) *Dialog {
	return &Dialog{repo: repo}
}

// Load checks the content of file name and updates the status line
func (d *Dialog) Load(name string, data []byte) {
	d.name = name
	records, err := Decode(data)
	d.err = err
	d.records = len(records)
	d.status = StatusFor(name, err)
}

// Fail records a read error for file name
func (d *Dialog) Fail(name string, err error) {
	d.name = name
	d.err = fmt.Errorf("%w: %w", ErrImportSyntax, err)
	d.records = 0
	d.status = StatusParseFailed
}

// Name returns the loaded file name
func (d *Dialog) Name() string { return d.name }

// Status returns the inline status line, "" before a file is loaded
func (d *Dialog) Status() string { return d.status }

// Err returns the validation error of the loaded file
func (d *Dialog) Err() error { return d.err }

// Records returns the number of records in a valid file
func (d *Dialog) Records() int { return d.records }

// CanConfirm reports whether a valid file is loaded
func (d *Dialog) CanConfirm() bool {
	return d.name != "" && d.err == nil
}

// Confirm re-validates data (the file read again) and merges it into the
// collection. The dialog is reset on success.
func (d *Dialog) Confirm(ctx context.Context, data []byte) (int, error) {
	if !d.CanConfirm() {
		return 0, d.blockedErr()
	}

	records, err := Decode(data)
	if err != nil {
		d.err = err
		d.status = StatusFor(d.name, err)
		return 0, err
	}

	n, err := d.repo.Import(ctx, records)
	if err != nil {
		return 0, err
	}
	d.Reset()
	return n, nil
}

// Reset clears the dialog
func (d *Dialog) Reset() {
	d.name = ""
	d.status = ""
	d.err = nil
	d.records = 0
}

func (d *Dialog) blockedErr() error {
	if d.err != nil {
		return d.err
	}
	return errors.New("no file loaded")
}

// StatusFor maps a Decode result to the dialog status line
func StatusFor(name string, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf(statusValidTemplate, name)
	case errors.Is(err, ErrImportStructure):
		return StatusInvalidShape
	default:
		return StatusParseFailed
	}
}

// ReadFile reads an import file from disk. Вынесено для асинхронного чтения в TUI.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
