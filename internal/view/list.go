package view

import (
	"fmt"

	"github.com/iudanet/flashkeeper/internal/models"
)

// Action is an entry of a summary card's action menu.
type Action string

// Card actions
const (
	ActionExport Action = "export"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// CardActions действия меню каждой карточки, в порядке отображения
var CardActions = []Action{ActionExport, ActionUpdate, ActionDelete}

// CardView is the summary card of one flashcard.
type CardView struct {
	ID         string
	Title      string
	Badge      string
	Actions    []Action
	FieldCount int
	Selected   bool
}

// ListView is the whole list screen, rebuilt from scratch after every
// mutation.
type ListView struct {
	Query             string
	Status            string
	Cards             []CardView
	ShowTutorial      bool
	SelectAllEnabled  bool
	BulkDeleteEnabled bool
}

// BuildList projects cards (already filtered by query, if any) into a
// ListView. total is the size of the whole unfiltered collection.
func BuildList(cards []models.Flashcard, total int, query string, sel *Selection) ListView {
	lv := ListView{
		Query: query,
		Cards: make([]CardView, 0, len(cards)),
	}

	for i := range cards {
		fc := &cards[i]
		lv.Cards = append(lv.Cards, CardView{
			ID:         fc.ID,
			Title:      fc.DisplayTitle(),
			FieldCount: fc.FieldCount(),
			Badge:      Badge(fc.FieldCount()),
			Selected:   sel != nil && sel.Has(fc.ID),
			Actions:    CardActions,
		})
	}

	if query != "" {
		lv.Status = SearchStatus(len(cards), query)
	} else if total == 0 {
		lv.ShowTutorial = true
	}

	lv.SelectAllEnabled = len(lv.Cards) > 0
	lv.BulkDeleteEnabled = sel != nil && sel.BulkDeleteEnabled()
	return lv
}

// VisibleIDs returns ids of the rendered cards in order
func (lv ListView) VisibleIDs() []string {
	ids := make([]string, 0, len(lv.Cards))
	for _, c := range lv.Cards {
		ids = append(ids, c.ID)
	}
	return ids
}

// Badge formats the field-count badge of a summary card
func Badge(n int) string {
	return fmt.Sprintf("%d FLASHCARD", n)
}

// SearchStatus formats the inline status line of an active search
func SearchStatus(found int, query string) string {
	return fmt.Sprintf("Found %d flashcard(s) matching \"%s\"", found, query)
}
