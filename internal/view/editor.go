package view

import (
	"context"

	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/validation"
)

// Mode selects what Save does.
type Mode int

// Editor modes
const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// Writer is the part of the repository the editor needs.
type Writer interface {
	Get(ctx context.Context, id string) (models.Flashcard, bool)
	Create(ctx context.Context, title string, fields []models.Field) (models.Flashcard, error)
	Update(ctx context.Context, id, title string, fields []models.Field) (bool, error)
}

// Row is one content/explanation input pair of the form.
type Row struct {
	Content     string
	Explanation string
	Removable   bool
}

// Editor is the edit modal controller, shared by create and update.
//
// State: closed -> open(editing id or none) -> closed. Closing always
// resets the editing id.
type Editor struct {
	repo      Writer
	editingID string
	title     string
	rows      []Row
	mode      Mode
	open      bool
}

// NewEditor creates a closed editor
func NewEditor(repo Writer) *Editor {
	e := &Editor{repo: repo}
	e.reset()
	return e
}

// OpenCreate opens an empty form in create mode
func (e *Editor) OpenCreate() {
	e.reset()
	e.mode = ModeCreate
	e.open = true
}

// OpenUpdate loads flashcard id into the form. It reports false and
// leaves the editor closed if there is no such flashcard.
func (e *Editor) OpenUpdate(ctx context.Context, id string) bool {
	fc, ok := e.repo.Get(ctx, id)
	if !ok {
		return false
	}

	e.reset()
	e.mode = ModeUpdate
	e.editingID = fc.ID
	e.title = fc.Title
	if len(fc.Fields) > 0 {
		e.rows = e.rows[:0]
		for i, f := range fc.Fields {
			e.rows = append(e.rows, Row{Content: f.Content, Explanation: f.Explanation, Removable: i > 0})
		}
	}
	e.open = true
	return true
}

// IsOpen reports whether the modal is shown
func (e *Editor) IsOpen() bool { return e.open }

// Mode returns the current mode
func (e *Editor) Mode() Mode { return e.mode }

// EditingID returns the id being updated, or "" in create mode or when closed
func (e *Editor) EditingID() string { return e.editingID }

// Title returns the title input value
func (e *Editor) Title() string { return e.title }

// Rows returns a copy of the field rows
func (e *Editor) Rows() []Row {
	out := make([]Row, len(e.rows))
	copy(out, e.rows)
	return out
}

// SetTitle updates the title input
func (e *Editor) SetTitle(title string) {
	e.title = title
}

// SetContent updates the content input of row i
func (e *Editor) SetContent(i int, content string) {
	if i >= 0 && i < len(e.rows) {
		e.rows[i].Content = content
	}
}

// SetExplanation updates the explanation input of row i
func (e *Editor) SetExplanation(i int, explanation string) {
	if i >= 0 && i < len(e.rows) {
		e.rows[i].Explanation = explanation
	}
}

// AddRow appends an empty removable row and returns its index
func (e *Editor) AddRow() int {
	e.rows = append(e.rows, Row{Removable: true})
	return len(e.rows) - 1
}

// RemoveRow removes row i if it is removable
func (e *Editor) RemoveRow(i int) bool {
	if i < 0 || i >= len(e.rows) || !e.rows[i].Removable {
		return false
	}
	e.rows = append(e.rows[:i], e.rows[i+1:]...)
	return true
}

// Fields returns the form rows as flashcard fields
func (e *Editor) Fields() []models.Field {
	fields := make([]models.Field, 0, len(e.rows))
	for _, r := range e.rows {
		fields = append(fields, models.Field{Content: r.Content, Explanation: r.Explanation})
	}
	return fields
}

// Validate checks the form and returns the first problem found
func (e *Editor) Validate() error {
	return validation.ValidateDraft(e.title, e.Fields())
}

// CanSave reports whether Save is enabled
func (e *Editor) CanSave() bool {
	return e.open && e.Validate() == nil
}

// Save re-validates the form, writes it through the repository and closes
// the editor. An invalid form is ignored: Save returns false, nil and the
// editor stays open.
func (e *Editor) Save(ctx context.Context) (bool, error) {
	if !e.CanSave() {
		return false, nil
	}

	var err error
	switch e.mode {
	case ModeUpdate:
		_, err = e.repo.Update(ctx, e.editingID, e.title, e.Fields())
	default:
		_, err = e.repo.Create(ctx, e.title, e.Fields())
	}
	if err != nil {
		return false, err
	}

	e.Close()
	return true, nil
}

// Close hides the modal and discards uncommitted input
func (e *Editor) Close() {
	e.reset()
}

func (e *Editor) reset() {
	e.open = false
	e.mode = ModeCreate
	e.editingID = ""
	e.title = ""
	// первая строка всегда есть и не удаляется
	e.rows = []Row{{}}
}
