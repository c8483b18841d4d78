package tui

import (
	"errors"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/flashkeeper/internal/transfer"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpireMsg:
		m.toast.Expire(msg.seq)
		return m, nil

	case fileReadMsg:
		return m, m.handleFileRead(msg)

	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenEditor:
			return m, m.updateEditor(msg)
		case screenPreview:
			return m, m.updatePreview(msg)
		case screenConfirmDelete, screenConfirmBulk:
			return m, m.updateConfirm(msg)
		case screenImport:
			return m, m.updateImport(msg)
		default:
			return m, m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	if m.searching {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, listKeys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, listKeys.Down):
		if m.cursor < len(m.list.Cards)-1 {
			m.cursor++
		}

	case key.Matches(msg, listKeys.Open):
		card, ok := m.current()
		if !ok {
			return nil
		}
		fc, found := m.repo.Get(m.ctx, card.ID)
		if !found {
			m.refresh()
			return nil
		}
		m.openSession(fc)
		return m.flush()

	case key.Matches(msg, listKeys.Toggle):
		if card, ok := m.current(); ok {
			m.sel.Toggle(card.ID)
			m.refresh()
		}

	case key.Matches(msg, listKeys.SelectAll):
		if m.list.SelectAllEnabled {
			m.sel.ToggleAll(m.list.VisibleIDs())
			m.refresh()
		}

	case key.Matches(msg, listKeys.New):
		m.editor.OpenCreate()
		m.screen = screenEditor
		return m.syncInputs(0)

	case key.Matches(msg, listKeys.Edit):
		card, ok := m.current()
		if !ok || !m.editor.OpenUpdate(m.ctx, card.ID) {
			return nil
		}
		m.screen = screenEditor
		return m.syncInputs(0)

	case key.Matches(msg, listKeys.Delete):
		if card, ok := m.current(); ok {
			m.pendingDelete = card.ID
			m.screen = screenConfirmDelete
		}

	case key.Matches(msg, listKeys.BulkDelete):
		if m.list.BulkDeleteEnabled {
			m.screen = screenConfirmBulk
		}

	case key.Matches(msg, listKeys.Search):
		m.searching = true
		return m.search.Focus()

	case key.Matches(msg, listKeys.Export):
		if _, err := m.exporter.Export(m.ctx, m.exportDir); err != nil && !errors.Is(err, transfer.ErrNothingToExport) {
			return m.showError(err)
		}
		return m.flush()

	case key.Matches(msg, listKeys.Import):
		m.dialog.Reset()
		m.loadedPath = ""
		m.pathInput.SetValue("")
		m.screen = screenImport
		return m.pathInput.Focus()

	case key.Matches(msg, listKeys.Theme):
		// переключаем тему на экране: она может быть задана конфигом, а не хранилищем
		next := m.theme.Opposite()
		if m.themes != nil {
			if err := m.themes.Set(m.ctx, next); err != nil {
				return m.showError(err)
			}
		}
		m.theme = next
		applyTheme(m.theme)

	case msg.Type == tea.KeyEsc:
		// esc вне поиска сбрасывает активный запрос
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return cmd
}

// syncInputs пересоздает поля ввода формы по состоянию редактора
func (m *Model) syncInputs(focus int) tea.Cmd {
	rows := m.editor.Rows()
	m.inputs = make([]textinput.Model, 0, 1+2*len(rows))

	title := textinput.New()
	title.Prompt = "Title: "
	title.SetValue(m.editor.Title())
	m.inputs = append(m.inputs, title)

	for _, r := range rows {
		content := textinput.New()
		content.Prompt = "  Content:     "
		content.SetValue(r.Content)

		explanation := textinput.New()
		explanation.Prompt = "  Explanation: "
		explanation.SetValue(r.Explanation)

		m.inputs = append(m.inputs, content, explanation)
	}

	return m.setFocus(focus)
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	i = (i%len(m.inputs) + len(m.inputs)) % len(m.inputs)
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[i].Focus()
}

// focusedRow returns the row of the focused input, or -1 for the title
func (m *Model) focusedRow() int {
	if m.focus == 0 {
		return -1
	}
	return (m.focus - 1) / 2
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, editorKeys.Cancel):
		m.editor.Close()
		m.screen = screenList
		return nil

	case key.Matches(msg, editorKeys.Save):
		saved, err := m.editor.Save(m.ctx)
		if err != nil {
			return m.showError(err)
		}
		if !saved {
			return nil
		}
		m.screen = screenList
		m.refresh()
		return m.flush()

	case key.Matches(msg, editorKeys.AddRow):
		row := m.editor.AddRow()
		return m.syncInputs(1 + 2*row)

	case key.Matches(msg, editorKeys.RemoveRow):
		row := m.focusedRow()
		if row < 0 || !m.editor.RemoveRow(row) {
			return nil
		}
		return m.syncInputs(min(m.focus, 2*len(m.editor.Rows())))

	case key.Matches(msg, editorKeys.Next):
		return m.setFocus(m.focus + 1)

	case key.Matches(msg, editorKeys.Prev):
		return m.setFocus(m.focus - 1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	value := m.inputs[m.focus].Value()

	switch row := m.focusedRow(); {
	case row < 0:
		m.editor.SetTitle(value)
	case (m.focus-1)%2 == 0:
		m.editor.SetContent(row, value)
	default:
		m.editor.SetExplanation(row, value)
	}
	return cmd
}

func (m *Model) updatePreview(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, previewKeys.Close):
		m.session = nil
		if m.studyOnly {
			m.quitting = true
			return tea.Quit
		}
		m.screen = screenList
		m.refresh()

	case key.Matches(msg, previewKeys.Flip):
		m.session.Flip()

	case key.Matches(msg, previewKeys.Next):
		m.session.Next()
		return m.flush()

	case key.Matches(msg, previewKeys.Restart):
		if m.session.AtEnd() {
			m.session.Restart()
			return m.flush()
		}
	}
	return nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.No):
		m.pendingDelete = ""
		m.screen = screenList
		return nil

	case key.Matches(msg, confirmKeys.Yes):
		var err error
		if m.screen == screenConfirmBulk {
			_, err = m.repo.DeleteMany(m.ctx, m.sel.IDs())
			if err == nil {
				m.sel.Clear()
			}
		} else {
			err = m.repo.Delete(m.ctx, m.pendingDelete)
		}
		m.pendingDelete = ""
		m.screen = screenList
		m.refresh()
		if err != nil {
			return m.showError(err)
		}
		return m.flush()
	}
	return nil
}

func (m *Model) updateImport(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, importKeys.Close):
		m.closeImport()
		return nil

	case key.Matches(msg, importKeys.Submit):
		path := m.pathInput.Value()
		if path == "" || m.reading {
			return nil
		}
		m.reading = true
		// повторное enter по проверенному файлу = подтверждение импорта
		confirm := m.dialog.CanConfirm() && m.loadedPath == path
		return readFileCmd(path, confirm)
	}

	before := m.pathInput.Value()
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	if m.pathInput.Value() != before {
		m.dialog.Reset()
		m.loadedPath = ""
	}
	return cmd
}

func (m *Model) closeImport() {
	m.dialog.Reset()
	m.loadedPath = ""
	m.reading = false
	m.pathInput.Blur()
	m.screen = screenList
}

func readFileCmd(path string, confirm bool) tea.Cmd {
	return func() tea.Msg {
		data, err := transfer.ReadFile(path)
		return fileReadMsg{path: path, data: data, err: err, confirm: confirm}
	}
}

func (m *Model) handleFileRead(msg fileReadMsg) tea.Cmd {
	m.reading = false
	// диалог закрыли или сменили файл, пока шло чтение
	if m.screen != screenImport || m.pathInput.Value() != msg.path {
		return nil
	}

	name := filepath.Base(msg.path)
	if msg.err != nil {
		m.dialog.Fail(name, msg.err)
		m.loadedPath = ""
		return nil
	}

	if !msg.confirm {
		m.dialog.Load(name, msg.data)
		m.loadedPath = msg.path
		return nil
	}

	_, err := m.dialog.Confirm(m.ctx, msg.data)
	if err != nil {
		if errors.Is(err, transfer.ErrImportSyntax) || errors.Is(err, transfer.ErrImportStructure) {
			return nil
		}
		return m.showError(err)
	}

	m.closeImport()
	m.refresh()
	return m.flush()
}
