package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/flashkeeper/internal/view"
)

const tutorialText = `No flashcards yet.

Press n to create your first set: give it a title and add
content / explanation pairs. Press i to import a JSON file.
Open a set with enter to study it in random order.`

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenEditor:
		body = m.renderEditor()
	case screenPreview:
		body = m.renderPreview()
	case screenConfirmDelete:
		body = m.renderConfirm("Delete flashcard", "Are you sure you want to delete this flashcard?")
	case screenConfirmBulk:
		body = m.renderConfirm("Delete selected",
			fmt.Sprintf("Are you sure you want to delete %d selected flashcards?", m.sel.Len()))
	case screenImport:
		body = m.renderImport()
	default:
		body = m.renderList()
	}

	parts := []string{styleHeader().Render("Flashkeeper") + styleMuted().Render("  theme: "+string(m.theme)), body}
	if toast := m.toast.Message(m.now()); toast != "" {
		parts = append(parts, styleToast().Render(toast))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func (m *Model) renderList() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if m.list.Status != "" {
		b.WriteString(styleMuted().Render(m.list.Status))
		b.WriteString("\n")
	}

	if m.list.ShowTutorial {
		b.WriteString(styleModal().Render(tutorialText))
		b.WriteString("\n")
	}

	for i, card := range m.list.Cards {
		check := "[ ]"
		if card.Selected {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s", check, card.Title, styleBadge().Render(card.Badge))
		b.WriteString(styleCard(i == m.cursor).Render(line))
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(styleMuted().Render(actionHints(card.Actions)))
			b.WriteString("\n")
		}
	}

	if m.sel.Len() > 0 {
		hint := fmt.Sprintf("%d selected", m.sel.Len())
		if m.list.BulkDeleteEnabled {
			hint += "  (D: delete selected)"
		}
		b.WriteString(styleMuted().Render(hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(listKeys))
	return b.String()
}

func (m *Model) renderEditor() string {
	var b strings.Builder

	heading := "Create flashcard"
	if m.editor.Mode() == view.ModeUpdate {
		heading = "Update flashcard"
	}

	for i, in := range m.inputs {
		if i > 0 && (i-1)%2 == 0 {
			b.WriteString(styleMuted().Render(fmt.Sprintf("Field %d", (i-1)/2+1)))
			b.WriteString("\n")
		}
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if err := m.editor.Validate(); err != nil {
		b.WriteString(styleMuted().Render("save disabled: " + err.Error()))
	} else {
		b.WriteString(styleBadge().Render("ctrl+s: save"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(editorKeys))

	return styleModal().Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(heading), "", b.String()))
}

func (m *Model) renderPreview() string {
	s := m.session
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(s.Title()))
	b.WriteString("  ")
	b.WriteString(styleMuted().Render(s.Counter()))
	b.WriteString("\n\n")

	if slide, ok := s.Current(); ok {
		side := "front"
		if slide.Flipped {
			side = "back"
		}
		b.WriteString(styleTier(slide.Tier()).Render(slide.Face()))
		b.WriteString("\n")
		b.WriteString(styleMuted().Render(side))
	} else {
		b.WriteString(styleMuted().Render("This flashcard set has no fields."))
	}

	if s.AtEnd() {
		b.WriteString("\n\n")
		b.WriteString(styleBadge().Render("r: restart"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(previewKeys))
	return b.String()
}

func (m *Model) renderConfirm(title, question string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		question,
		"",
		m.help.View(confirmKeys),
	)
	return styleModal().Render(content)
}

func (m *Model) renderImport() string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Import JSON"),
		"",
		m.pathInput.View(),
	}

	switch status := m.dialog.Status(); {
	case m.reading:
		lines = append(lines, styleMuted().Render("Reading file..."))
	case status == "":
	case m.dialog.CanConfirm():
		lines = append(lines, styleBadge().Render(status), styleMuted().Render("Press enter again to import."))
	default:
		lines = append(lines, styleError().Render(status))
	}

	lines = append(lines, "", m.help.View(importKeys))
	return styleModal().Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// actionHints renders the action menu of the card under the cursor
func actionHints(actions []view.Action) string {
	hints := make([]string, 0, len(actions))
	for _, a := range actions {
		if k, ok := actionKeys[a]; ok {
			hints = append(hints, k.Help().Key+": "+string(a))
		}
	}
	return "    " + strings.Join(hints, "  ")
}
