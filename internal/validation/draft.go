package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/flashkeeper/internal/models"
)

// Draft validation errors
var (
	// ErrBlankTitle is returned when the title is empty after trimming
	ErrBlankTitle = errors.New("title cannot be blank")

	// ErrNoFields is returned when a draft has no field rows
	ErrNoFields = errors.New("at least one field is required")

	// ErrBlankField is returned when a field row has blank content or explanation
	ErrBlankField = errors.New("field content and explanation cannot be blank")
)

// Draft is a flashcard about to be saved from an edit form.
type Draft struct {
	Title  string       `validate:"notblank"`
	Fields []DraftField `validate:"min=1,dive"`
}

// DraftField is one content/explanation row of a Draft.
type DraftField struct {
	Content     string `validate:"notblank"`
	Explanation string `validate:"notblank"`
}

// NewDraft builds a Draft from form values.
func NewDraft(title string, fields []models.Field) Draft {
	d := Draft{Title: title, Fields: make([]DraftField, 0, len(fields))}
	for _, f := range fields {
		d.Fields = append(d.Fields, DraftField{Content: f.Content, Explanation: f.Explanation})
	}
	return d
}

// ValidateDraft checks that title is non-blank, there is at least one
// field, and every field has non-blank content and explanation.
func ValidateDraft(title string, fields []models.Field) error {
	err := Struct(NewDraft(title, fields))
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.StructNamespace() {
	case "Draft.Title":
		return ErrBlankTitle
	case "Draft.Fields":
		return ErrNoFields
	default:
		// Draft.Fields[1].Content -> field 2 content
		return fmt.Errorf("%w: %s", ErrBlankField, describeField(fe))
	}
}

func describeField(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.StructNamespace(), "Draft.Fields[")
	idx, rest, ok := strings.Cut(ns, "]")
	if !ok {
		return fe.StructNamespace()
	}
	var n int
	if _, err := fmt.Sscanf(idx, "%d", &n); err != nil {
		return fe.StructNamespace()
	}
	return fmt.Sprintf("field %d %s", n+1, strings.ToLower(strings.TrimPrefix(rest, ".")))
}
