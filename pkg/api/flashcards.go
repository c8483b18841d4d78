package api

// ExportFileName фиксированное имя файла экспорта
const ExportFileName = "flashcards.json"

// FieldRecord представляет одно поле карточки в файле импорта/экспорта
type FieldRecord struct {
	Content     string `json:"content"`
	Explanation string `json:"explanation"`
}

// FlashcardRecord представляет набор карточек в файле импорта/экспорта.
// Служебные поля хранилища (id, createdAt, updatedAt) не передаются.
type FlashcardRecord struct {
	Title  string        `json:"title"`
	Fields []FieldRecord `json:"fields"`
}

// ImportField is the decode target for one field of an import file.
// Указатели отличают отсутствующий ключ от пустой строки.
type ImportField struct {
	Content     *string `json:"content" validate:"required"`
	Explanation *string `json:"explanation" validate:"required"`
}

// ImportRecord is the decode target for one element of an import file.
// transfer.Decode fills it by exact key names, json tags serve other callers.
// Fields must be present and be an array ([] is allowed, null is not).
type ImportRecord struct {
	Title  *string       `json:"title" validate:"required"`
	Fields []ImportField `json:"fields" validate:"required,dive"`
}

// Record converts a validated ImportRecord into a FlashcardRecord.
func (r ImportRecord) Record() FlashcardRecord {
	rec := FlashcardRecord{
		Fields: make([]FieldRecord, 0, len(r.Fields)),
	}
	if r.Title != nil {
		rec.Title = *r.Title
	}
	for _, f := range r.Fields {
		var fr FieldRecord
		if f.Content != nil {
			fr.Content = *f.Content
		}
		if f.Explanation != nil {
			fr.Explanation = *f.Explanation
		}
		rec.Fields = append(rec.Fields, fr)
	}
	return rec
}
