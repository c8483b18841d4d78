package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/flashkeeper/internal/iocli"
	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/storage"
)

// isolate убирает влияние конфигов пользователя и рабочей директории
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func run(t *testing.T, opts Options, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.IO = iocli.NewStream(strings.NewReader(stdin), &out)
	opts.LogOutput = io.Discard
	err := Execute(context.Background(), opts, args)
	return out.String(), err
}

func TestExecute_Version(t *testing.T) {
	isolate(t)

	out, err := run(t, Options{Build: BuildInfo{Version: "1.2.3", BuildDate: "2026-01-01", GitCommit: "abc"}}, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    1.2.3")
	assert.Contains(t, out, "Git Commit: abc")
}

func TestExecute_Drivers(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			isolate(t)
			db := filepath.Join(t.TempDir(), "cards.db")
			base := []string{"--driver", driver, "--db", db}

			out, err := run(t, Options{}, "", append(base, "add", "-t", "Spanish", "-f", "hola::hello")...)
			require.NoError(t, err)
			assert.Contains(t, out, "Flashcard created successfully!")

			// данные переживают перезапуск процесса
			out, err = run(t, Options{}, "", append(base, "list")...)
			require.NoError(t, err)
			assert.Contains(t, out, "1. Spanish [1 FLASHCARD]")

			// без подкоманды и без терминала печатается список
			out, err = run(t, Options{}, "", base...)
			require.NoError(t, err)
			assert.Contains(t, out, "=== Flashcards ===")
		})
	}
}

func TestExecute_InjectedStorage(t *testing.T) {
	isolate(t)
	kv := storage.NewMemory()
	opts := Options{Storage: kv}

	_, err := run(t, opts, "", "add", "--title", "Spanish", "--field", "hola::hello")
	require.NoError(t, err)
	_, err = run(t, opts, "yes\n", "import", writeFile(t, "in.json", importJSON))
	require.NoError(t, err)

	out, err := run(t, opts, "", "list", "--json")
	require.NoError(t, err)

	var got []models.Flashcard
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Spanish", got[0].Title)

	out, err = run(t, opts, "", "search", "paris")
	require.NoError(t, err)
	assert.Contains(t, out, `Found 1 flashcard(s) matching "paris"`)
	assert.Contains(t, out, "Geography")
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown driver", args: []string{"--driver", "mongo", "list"}},
		{name: "show unknown id", args: []string{"show", "missing"}},
		{name: "delete-many needs two ids", args: []string{"delete-many", "one"}},
		{name: "add with invalid field", args: []string{"add", "-t", "x", "-f", "nosep"}},
		{name: "unexpected argument", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := run(t, Options{Storage: storage.NewMemory()}, "", tt.args...)
			assert.Error(t, err)
		})
	}
}
