package transfer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/flashkeeper/internal/data"
	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/notify"
	"github.com/iudanet/flashkeeper/internal/storage"
	"github.com/iudanet/flashkeeper/pkg/api"
)

func newRepo(t *testing.T, n notify.Notifier) data.Service {
	t.Helper()
	return data.NewService(storage.NewMemory(), data.Options{Notifier: n})
}

func seed(t *testing.T, repo data.Service, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := repo.Create(context.Background(), title, []models.Field{{Content: "c", Explanation: "e"}})
		require.NoError(t, err)
	}
}

func TestExporter_Export(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	repo := newRepo(t, nil)
	seed(t, repo, "A", "B")

	dir := filepath.Join(t.TempDir(), "out")
	path, err := NewExporter(repo, rec, nil).Export(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, api.ExportFileName), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, repo.Export(ctx), got)
	assert.NotContains(t, string(raw), `"id"`)
	assert.Equal(t, []string{notify.MsgExported}, rec.Messages())
}

func TestExporter_EmptyCollection(t *testing.T) {
	rec := &notify.Recorder{}
	dir := t.TempDir()

	path, err := NewExporter(newRepo(t, nil), rec, nil).Export(context.Background(), dir)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Empty(t, path)
	assert.NoFileExists(t, filepath.Join(dir, api.ExportFileName))
	assert.Equal(t, []string{notify.MsgNothingExport}, rec.Messages())
}

func TestDialog_ImportExample(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	repo := newRepo(t, rec)
	seed(t, repo, "one", "two")

	file := []byte(`[{"title":"X","fields":[{"content":"a","explanation":"b"}]}]`)

	d := NewDialog(repo)
	assert.False(t, d.CanConfirm())

	d.Load("deck.json", file)
	assert.Equal(t, `File "deck.json" is valid`, d.Status())
	assert.Equal(t, 1, d.Records())
	require.True(t, d.CanConfirm())

	n, err := d.Confirm(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, repo.List(ctx), 3)
	assert.Equal(t, notify.MsgImported, rec.Last())

	// диалог сбрасывается после подтверждения
	assert.Empty(t, d.Name())
	assert.Empty(t, d.Status())
	assert.False(t, d.CanConfirm())
}

func TestDialog_RejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, nil)
	seed(t, repo, "one", "two")
	before := repo.List(ctx)

	file := []byte(`[{"title":"X"}]`)
	d := NewDialog(repo)
	d.Load("bad.json", file)

	assert.Equal(t, StatusInvalidShape, d.Status())
	assert.False(t, d.CanConfirm())

	_, err := d.Confirm(ctx, file)
	assert.ErrorIs(t, err, ErrImportStructure)
	assert.Equal(t, before, repo.List(ctx))
}

func TestDialog_ParseFailure(t *testing.T) {
	d := NewDialog(newRepo(t, nil))
	d.Load("broken.json", []byte(`[{`))

	assert.Equal(t, StatusParseFailed, d.Status())
	assert.ErrorIs(t, d.Err(), ErrImportSyntax)
	assert.False(t, d.CanConfirm())
}

func TestDialog_ConfirmRevalidates(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, nil)
	d := NewDialog(repo)

	d.Load("deck.json", []byte(`[]`))
	require.True(t, d.CanConfirm())

	// файл изменился между выбором и подтверждением
	_, err := d.Confirm(ctx, []byte(`[{"title":"X"}]`))
	assert.ErrorIs(t, err, ErrImportStructure)
	assert.Equal(t, StatusInvalidShape, d.Status())
	assert.Empty(t, repo.List(ctx))
}

func TestDialog_FailAndReset(t *testing.T) {
	d := NewDialog(newRepo(t, nil))
	d.Fail("gone.json", errors.New("no such file"))

	assert.Equal(t, StatusParseFailed, d.Status())
	assert.False(t, d.CanConfirm())

	d.Reset()
	assert.Empty(t, d.Status())
	assert.NoError(t, d.Err())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	raw, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
