package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/flashkeeper/internal/models"
)

func sampleCards() []models.Flashcard {
	return []models.Flashcard{
		{ID: "a", Title: "Spanish", Fields: []models.Field{{Content: "hola", Explanation: "hello"}}},
		{ID: "b", Title: "", Fields: []models.Field{}},
	}
}

func TestBuildList_Cards(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("b")

	lv := BuildList(sampleCards(), 2, "", sel)

	require.Len(t, lv.Cards, 2)
	assert.Equal(t, "Spanish", lv.Cards[0].Title)
	assert.Equal(t, "1 FLASHCARD", lv.Cards[0].Badge)
	assert.False(t, lv.Cards[0].Selected)
	assert.Equal(t, CardActions, lv.Cards[0].Actions)

	assert.Equal(t, models.UntitledTitle, lv.Cards[1].Title)
	assert.Equal(t, "0 FLASHCARD", lv.Cards[1].Badge)
	assert.True(t, lv.Cards[1].Selected)

	assert.Empty(t, lv.Status)
	assert.False(t, lv.ShowTutorial)
	assert.True(t, lv.SelectAllEnabled)
	assert.False(t, lv.BulkDeleteEnabled)
	assert.Equal(t, []string{"a", "b"}, lv.VisibleIDs())
}

func TestBuildList_States(t *testing.T) {
	tests := []struct {
		name         string
		cards        []models.Flashcard
		total        int
		query        string
		wantStatus   string
		wantTutorial bool
		wantSelAll   bool
	}{
		{
			name:         "empty collection shows tutorial",
			total:        0,
			wantTutorial: true,
		},
		{
			name:       "search with results",
			cards:      sampleCards()[:1],
			total:      2,
			query:      "span",
			wantStatus: `Found 1 flashcard(s) matching "span"`,
			wantSelAll: true,
		},
		{
			name:       "search with zero results",
			total:      2,
			query:      "xyz",
			wantStatus: `Found 0 flashcard(s) matching "xyz"`,
		},
		{
			name:       "search over empty collection",
			total:      0,
			query:      "q",
			wantStatus: `Found 0 flashcard(s) matching "q"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lv := BuildList(tt.cards, tt.total, tt.query, NewSelection())
			assert.Equal(t, tt.wantStatus, lv.Status)
			assert.Equal(t, tt.wantTutorial, lv.ShowTutorial)
			assert.Equal(t, tt.wantSelAll, lv.SelectAllEnabled)
		})
	}
}

func TestBuildList_BulkDeleteFollowsSelection(t *testing.T) {
	sel := NewSelection()
	sel.ToggleAll([]string{"a", "b"})

	lv := BuildList(sampleCards(), 2, "", sel)
	assert.True(t, lv.BulkDeleteEnabled)
	assert.True(t, lv.Cards[0].Selected)
	assert.True(t, lv.Cards[1].Selected)
}
