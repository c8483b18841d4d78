package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/flashkeeper/internal/models"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		fields  []models.Field
		wantErr error
		wantMsg string
	}{
		{
			name:   "valid",
			title:  "Spanish",
			fields: []models.Field{{Content: "hola", Explanation: "hello"}},
		},
		{
			name:    "blank title",
			title:   "   ",
			fields:  []models.Field{{Content: "hola", Explanation: "hello"}},
			wantErr: ErrBlankTitle,
		},
		{
			name:    "no fields",
			title:   "Spanish",
			fields:  nil,
			wantErr: ErrNoFields,
		},
		{
			name:  "blank explanation in second row",
			title: "Spanish",
			fields: []models.Field{
				{Content: "hola", Explanation: "hello"},
				{Content: "adios", Explanation: "\t "},
			},
			wantErr: ErrBlankField,
			wantMsg: "field 2 explanation",
		},
		{
			name:    "blank content",
			title:   "Spanish",
			fields:  []models.Field{{Content: "", Explanation: "hello"}},
			wantErr: ErrBlankField,
			wantMsg: "field 1 content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.title, tt.fields)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateDraft_UntrimmedValuesAreValid(t *testing.T) {
	// Пробелы по краям допустимы, проверяется только "не пусто после trim"
	err := ValidateDraft("  Spanish ", []models.Field{{Content: " hola", Explanation: "hello "}})
	assert.NoError(t, err)
}
