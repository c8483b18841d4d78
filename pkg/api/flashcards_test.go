package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRecord_Record(t *testing.T) {
	raw := `{"title":"X","fields":[{"content":"a","explanation":"b","extra":1}],"id":"ignored"}`

	var rec ImportRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	got := rec.Record()
	assert.Equal(t, FlashcardRecord{
		Title:  "X",
		Fields: []FieldRecord{{Content: "a", Explanation: "b"}},
	}, got)
}

func TestImportRecord_DistinguishesMissingFromEmpty(t *testing.T) {
	var empty ImportRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"","fields":[]}`), &empty))
	require.NotNil(t, empty.Title)
	assert.NotNil(t, empty.Fields)

	var missing ImportRecord
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Nil(t, missing.Title)
	assert.Nil(t, missing.Fields)
}

func TestFlashcardRecord_ExportShape(t *testing.T) {
	data, err := json.Marshal([]FlashcardRecord{{Title: "T", Fields: []FieldRecord{}}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"T","fields":[]}]`, string(data))
}
