package view

import "slices"

// MinBulkDelete минимальный размер выбора, при котором доступно массовое удаление
const MinBulkDelete = 2

// Selection is the ephemeral set of flashcard ids marked for bulk
// deletion. It is never persisted.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds id if it is not selected and removes it otherwise.
// It returns the new state of id.
func (s *Selection) Toggle(id string) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether id is selected
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids
func (s *Selection) Len() int {
	return len(s.ids)
}

// Clear empties the selection
func (s *Selection) Clear() {
	clear(s.ids)
}

// ToggleAll selects every visible id, or clears the selection when it
// already holds as many ids as there are visible cards.
func (s *Selection) ToggleAll(visible []string) {
	if len(visible) == 0 {
		return
	}
	if s.Len() == len(visible) {
		s.Clear()
		return
	}
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
}

// Retain drops ids that are no longer present, e.g. after a delete
// from another surface.
func (s *Selection) Retain(present []string) {
	keep := make(map[string]struct{}, len(present))
	for _, id := range present {
		keep[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// BulkDeleteEnabled reports whether bulk delete may be offered
func (s *Selection) BulkDeleteEnabled() bool {
	return s.Len() >= MinBulkDelete
}

// IDs returns the selected ids in sorted order
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
