// Package tui is the interactive terminal surface: list, search, editor,
// study carousel, confirmations, import dialog and toasts.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/flashkeeper/internal/data"
	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/notify"
	"github.com/iudanet/flashkeeper/internal/settings"
	"github.com/iudanet/flashkeeper/internal/transfer"
	"github.com/iudanet/flashkeeper/internal/view"
)

type screen int

const (
	screenList screen = iota
	screenEditor
	screenPreview
	screenConfirmDelete
	screenConfirmBulk
	screenImport
)

// Options wires the model to the application core.
type Options struct {
	Repo     data.Service
	Exporter *transfer.Exporter
	Themes   *settings.Themes
	// Inbox must be the Notifier given to Repo and Exporter
	Inbox         *notify.Queue
	Logger        *slog.Logger
	Now           func() time.Time
	Intn          func(n int) int
	ExportDir     string
	Theme         settings.Theme
	ToastDuration time.Duration
}

type toastExpireMsg struct {
	seq int
}

// fileReadMsg завершение асинхронного чтения файла импорта
type fileReadMsg struct {
	err     error
	path    string
	data    []byte
	confirm bool
}

// Model is the bubbletea model of the whole application.
type Model struct {
	ctx      context.Context
	repo     data.Service
	exporter *transfer.Exporter
	themes   *settings.Themes
	inbox    *notify.Queue
	logger   *slog.Logger
	now      func() time.Time
	intn     func(n int) int

	sel     *view.Selection
	editor  *view.Editor
	session *view.Session
	dialog  *transfer.Dialog
	toast   *notify.Toast

	list      view.ListView
	exportDir string
	theme     settings.Theme

	pendingDelete string
	loadedPath    string

	search    textinput.Model
	pathInput textinput.Model
	inputs    []textinput.Model
	help      help.Model

	screen    screen
	cursor    int
	focus     int
	width     int
	height    int
	searching bool
	reading   bool
	studyOnly bool
	quitting  bool
}

// New creates the list screen model
func New(ctx context.Context, opts Options) *Model {
	m := &Model{
		ctx:       ctx,
		repo:      opts.Repo,
		exporter:  opts.Exporter,
		themes:    opts.Themes,
		inbox:     opts.Inbox,
		logger:    opts.Logger,
		now:       opts.Now,
		intn:      opts.Intn,
		exportDir: opts.ExportDir,
		sel:       view.NewSelection(),
		editor:    view.NewEditor(opts.Repo),
		dialog:    transfer.NewDialog(opts.Repo),
		toast:     notify.NewToast(opts.ToastDuration),
		help:      help.New(),
	}
	if m.inbox == nil {
		m.inbox = &notify.Queue{}
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.exporter == nil {
		m.exporter = transfer.NewExporter(opts.Repo, m.inbox, m.logger)
	}

	m.theme = opts.Theme
	if m.theme == "" && m.themes != nil {
		m.theme = m.themes.Current(ctx)
	}
	if m.theme == "" {
		m.theme = settings.ThemeLight
	}

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = "Search flashcards"

	m.pathInput = textinput.New()
	m.pathInput.Prompt = "File: "
	m.pathInput.Placeholder = "path/to/flashcards.json"

	m.refresh()
	return m
}

// NewStudy creates a model that shows only the study session of
// flashcard fc and quits when it is closed.
func NewStudy(ctx context.Context, opts Options, fc models.Flashcard) *Model {
	m := New(ctx, opts)
	m.studyOnly = true
	m.openSession(fc)
	return m
}

func (m *Model) Init() tea.Cmd {
	applyTheme(m.theme)
	return m.flush()
}

// refresh перечитывает коллекцию и пересобирает список целиком
func (m *Model) refresh() {
	all := m.repo.List(m.ctx)
	query := m.search.Value()

	// пустой запрос = без фильтра
	cards := all
	if query != "" {
		cards = m.repo.Search(m.ctx, query)
	}

	ids := make([]string, 0, len(all))
	for _, fc := range all {
		ids = append(ids, fc.ID)
	}
	m.sel.Retain(ids)

	m.list = view.BuildList(cards, len(all), query, m.sel)
	if m.cursor >= len(m.list.Cards) {
		m.cursor = len(m.list.Cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the summary card under the cursor
func (m *Model) current() (view.CardView, bool) {
	if len(m.list.Cards) == 0 {
		return view.CardView{}, false
	}
	return m.list.Cards[m.cursor], true
}

// flush shows the latest queued notification as a toast
func (m *Model) flush() tea.Cmd {
	msgs := m.inbox.Drain()
	if len(msgs) == 0 {
		return nil
	}
	return m.showToast(msgs[len(msgs)-1])
}

func (m *Model) showToast(message string) tea.Cmd {
	seq := m.toast.Show(message, m.now())
	return tea.Tick(m.toast.Duration(), func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

func (m *Model) showError(err error) tea.Cmd {
	m.logger.Error("operation failed", "error", err)
	return m.showToast("Error: " + err.Error())
}

func (m *Model) openSession(fc models.Flashcard) {
	var opts []view.SessionOption
	if m.intn != nil {
		opts = append(opts, view.WithIntn(m.intn))
	}
	m.session = view.NewSession(fc, m.inbox, opts...)
	m.screen = screenPreview
}
