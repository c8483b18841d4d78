package models

import (
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// UntitledTitle подставляется в списке вместо пустого заголовка.
const UntitledTitle = "Untitled"

// TimestampLayout ISO 8601 в UTC с ровно тремя знаками миллисекунд
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Field представляет одну пару лицевая/обратная сторона внутри набора.
type Field struct {
	Content     string `json:"content"`     // Content лицевая сторона (вопрос)
	Explanation string `json:"explanation"` // Explanation обратная сторона (ответ)
}

// Flashcard представляет набор карточек, созданный пользователем.
// Хранится целиком в одной JSON-коллекции под ключом storage.KeyFlashcards.
type Flashcard struct {
	CreatedAt time.Time `json:"createdAt"` // CreatedAt время создания, не меняется при обновлении
	UpdatedAt time.Time `json:"updatedAt"` // UpdatedAt время последнего сохранения
	ID        string    `json:"id"`        // ID непрозрачный уникальный идентификатор
	Title     string    `json:"title"`     // Title заголовок набора
	Fields    []Field   `json:"fields"`    // Fields упорядоченные пары content/explanation
}

// MarshalJSON writes createdAt/updatedAt in TimestampLayout, so that every
// stamp has a fixed-width millisecond fraction.
func (f Flashcard) MarshalJSON() ([]byte, error) {
	type plain Flashcard
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
		UpdatedAt string `json:"updatedAt"`
	}{
		plain:     plain(f),
		CreatedAt: f.CreatedAt.UTC().Format(TimestampLayout),
		UpdatedAt: f.UpdatedAt.UTC().Format(TimestampLayout),
	})
}

// DisplayTitle returns the title shown on summary cards.
func (f *Flashcard) DisplayTitle() string {
	// только пустой заголовок; заголовок из пробелов показывается как есть
	if f.Title == "" {
		return UntitledTitle
	}
	return f.Title
}

// FieldCount returns the number of fields in the set.
func (f *Flashcard) FieldCount() int {
	return len(f.Fields)
}

// Matches reports whether the title or any field content/explanation
// contains query, ignoring case.
func (f *Flashcard) Matches(query string) bool {
	folder := cases.Fold()
	q := folder.String(query)

	if strings.Contains(folder.String(f.Title), q) {
		return true
	}
	for _, field := range f.Fields {
		if strings.Contains(folder.String(field.Content), q) ||
			strings.Contains(folder.String(field.Explanation), q) {
			return true
		}
	}
	return false
}

// Clone создает глубокую копию, чтобы вызывающий код не мог изменить
// закешированную коллекцию через общий срез Fields.
func (f *Flashcard) Clone() Flashcard {
	return Flashcard{
		ID:        f.ID,
		Title:     f.Title,
		Fields:    CloneFields(f.Fields),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// CloneFields copies fields into a new non-nil slice, so that an empty set
// is serialized as [] rather than null.
func CloneFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
