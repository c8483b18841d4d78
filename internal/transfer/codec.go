package transfer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/flashkeeper/internal/validation"
	"github.com/iudanet/flashkeeper/pkg/api"
)

// importFile обертка, чтобы validator прошел dive по срезу верхнего уровня
type importFile struct {
	Records []api.ImportRecord `validate:"dive"`
}

// ключи файла импорта, сравниваются с учетом регистра
const (
	keyTitle       = "title"
	keyFields      = "fields"
	keyContent     = "content"
	keyExplanation = "explanation"
)

// Decode parses and structurally validates an import file. Keys must match
// exactly; unknown keys are ignored. A syntax error wraps ErrImportSyntax,
// any shape mismatch wraps ErrImportStructure.
func Decode(data []byte) ([]api.FlashcardRecord, error) {
	if !json.Valid(data) {
		return nil, ErrImportSyntax
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: top level must be an array", ErrImportStructure)
	}
	// null на верхнем уровне не массив
	if elems == nil {
		return nil, fmt.Errorf("%w: top level must be an array", ErrImportStructure)
	}

	raw := make([]api.ImportRecord, 0, len(elems))
	for i, elem := range elems {
		rec, err := decodeRecord(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrImportStructure, i, err)
		}
		raw = append(raw, rec)
	}

	if err := validation.Struct(importFile{Records: raw}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportStructure, err)
	}

	records := make([]api.FlashcardRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.Record())
	}
	return records, nil
}

// decodeRecord reads title and fields by their exact key names.
// Missing keys stay nil and are rejected by the validator.
func decodeRecord(elem json.RawMessage) (api.ImportRecord, error) {
	var rec api.ImportRecord

	obj, err := decodeObject(elem)
	if err != nil {
		return rec, err
	}
	if rec.Title, err = stringKey(obj, keyTitle); err != nil {
		return rec, err
	}

	rawFields, ok := obj[keyFields]
	if !ok {
		return rec, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(rawFields, &items); err != nil {
		return rec, fmt.Errorf("%s must be an array", keyFields)
	}
	if items == nil {
		return rec, nil
	}

	rec.Fields = make([]api.ImportField, 0, len(items))
	for j, item := range items {
		fieldObj, err := decodeObject(item)
		if err != nil {
			return rec, fmt.Errorf("%s[%d]: %w", keyFields, j, err)
		}
		var f api.ImportField
		if f.Content, err = stringKey(fieldObj, keyContent); err != nil {
			return rec, fmt.Errorf("%s[%d]: %w", keyFields, j, err)
		}
		if f.Explanation, err = stringKey(fieldObj, keyExplanation); err != nil {
			return rec, fmt.Errorf("%s[%d]: %w", keyFields, j, err)
		}
		rec.Fields = append(rec.Fields, f)
	}
	return rec, nil
}

// decodeObject returns the keys of a JSON object; null gives an empty map
func decodeObject(elem json.RawMessage) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(elem, &obj); err != nil {
		return nil, errors.New("element must be an object")
	}
	return obj, nil
}

// stringKey returns the string under key, nil when the key is absent or null
func stringKey(obj map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, nil
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s must be a string", key)
	}
	return v, nil
}

// Encode serializes records as 2-space indented JSON
func Encode(records []api.FlashcardRecord) ([]byte, error) {
	if records == nil {
		records = []api.FlashcardRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return data, nil
}
