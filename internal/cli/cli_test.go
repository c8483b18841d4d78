package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/flashkeeper/internal/config"
	"github.com/iudanet/flashkeeper/internal/data"
	"github.com/iudanet/flashkeeper/internal/iocli"
	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/notify"
	"github.com/iudanet/flashkeeper/internal/settings"
	"github.com/iudanet/flashkeeper/internal/storage"
	"github.com/iudanet/flashkeeper/internal/transfer"
)

// console собирает вывод IOMock и отдает заготовленные ответы
type console struct {
	out     strings.Builder
	answers []string
	mu      sync.Mutex
}

func (c *console) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.String()
}

func newMockIO(answers ...string) (*iocli.IOMock, *console) {
	con := &console{answers: answers}
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			con.mu.Lock()
			defer con.mu.Unlock()
			con.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			con.mu.Lock()
			defer con.mu.Unlock()
			fmt.Fprintf(&con.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			con.mu.Lock()
			defer con.mu.Unlock()
			return con.out.Write(p)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			con.mu.Lock()
			defer con.mu.Unlock()
			if len(con.answers) == 0 {
				return "", io.EOF
			}
			a := con.answers[0]
			con.answers = con.answers[1:]
			return a, nil
		},
		IsTerminalFunc: func() bool { return false },
	}
	return mock, con
}

type fixture struct {
	cli  *Cli
	repo data.Service
	io   *iocli.IOMock
	con  *console
}

func newFixture(t *testing.T, answers ...string) *fixture {
	t.Helper()

	mockIO, con := newMockIO(answers...)
	kv := storage.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := notify.Writer{W: mockIO}

	repo := data.NewService(kv, data.Options{Notifier: notifier, Logger: logger})
	cfg := &config.Config{Export: config.ExportConfig{Dir: t.TempDir()}}

	return &fixture{
		cli: New(mockIO, repo, transfer.NewExporter(repo, notifier, logger),
			settings.NewThemesWithDetector(kv, func() bool { return false }), cfg, logger),
		repo: repo,
		io:   mockIO,
		con:  con,
	}
}

func (f *fixture) seed(t *testing.T, title string, fields ...models.Field) models.Flashcard {
	t.Helper()
	fc, err := f.repo.Create(context.Background(), title, fields)
	require.NoError(t, err)
	return fc
}

func spanish() []models.Field {
	return []models.Field{{Content: "hola", Explanation: "hello"}}
}
