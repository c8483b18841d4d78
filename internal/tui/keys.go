package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iudanet/flashkeeper/internal/view"
)

type listKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	BulkDelete key.Binding
	Search     key.Binding
	Export     key.Binding
	Import     key.Binding
	Theme      key.Binding
	Quit       key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Edit, k.Delete, k.Search, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Toggle, k.SelectAll},
		{k.New, k.Edit, k.Delete, k.BulkDelete},
		{k.Search, k.Export, k.Import, k.Theme, k.Quit},
	}
}

var listKeys = listKeyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:       key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter", "study")),
	Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	BulkDelete: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Export:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
	Import:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
	Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// actionKeys клавиши действий меню карточки
var actionKeys = map[view.Action]key.Binding{
	view.ActionExport: listKeys.Export,
	view.ActionUpdate: listKeys.Edit,
	view.ActionDelete: listKeys.Delete,
}

type editorKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	AddRow    key.Binding
	RemoveRow key.Binding
	Save      key.Binding
	Cancel    key.Binding
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.AddRow, k.RemoveRow, k.Save, k.Cancel}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Prev}}
}

var editorKeys = editorKeyMap{
	Next:      key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab", "next")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	AddRow:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add field")),
	RemoveRow: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "remove field")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

type previewKeyMap struct {
	Flip    key.Binding
	Next    key.Binding
	Restart key.Binding
	Close   key.Binding
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Next, k.Restart, k.Close}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var previewKeys = previewKeyMap{
	Flip:    key.NewBinding(key.WithKeys(" ", "enter", "f"), key.WithHelp("space", "flip")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
}

type confirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var confirmKeys = confirmKeyMap{
	Yes: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "delete")),
	No:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
}

type importKeyMap struct {
	Submit key.Binding
	Close  key.Binding
}

func (k importKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Close}
}

func (k importKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var importKeys = importKeyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check / import")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

var quitKey = key.NewBinding(key.WithKeys("ctrl+c"))
