// Package cli wires configuration, storage and the flashcard core into the
// flashkeeper command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/flashkeeper/internal/clock"
	"github.com/iudanet/flashkeeper/internal/config"
	"github.com/iudanet/flashkeeper/internal/data"
	"github.com/iudanet/flashkeeper/internal/idgen"
	"github.com/iudanet/flashkeeper/internal/iocli"
	"github.com/iudanet/flashkeeper/internal/logger"
	"github.com/iudanet/flashkeeper/internal/notify"
	"github.com/iudanet/flashkeeper/internal/settings"
	"github.com/iudanet/flashkeeper/internal/storage"
	"github.com/iudanet/flashkeeper/internal/storage/boltdb"
	"github.com/iudanet/flashkeeper/internal/storage/sqlite"
	"github.com/iudanet/flashkeeper/internal/transfer"
	"github.com/iudanet/flashkeeper/internal/tui"
)

// BuildInfo is set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Options overrides process-level dependencies. Zero values use stdio,
// the configured storage backend and stderr logging.
type Options struct {
	IO iocli.IO
	// Storage если задан, используется вместо storage.path и не закрывается
	Storage   storage.KeyValueStorage
	LogOutput io.Writer
	Build     BuildInfo
}

// App holds state shared by all commands of one invocation.
type App struct {
	opts       Options
	v          *viper.Viper
	cfg        *config.Config
	cli        *Cli
	inbox      *notify.Queue
	logger     *slog.Logger
	closers    []func() error
	configFile string
	tuiMode    bool
}

// Execute runs the command line args and releases every opened resource,
// also when the command fails.
func Execute(ctx context.Context, opts Options, args []string) error {
	app := newApp(opts)
	cmd := app.rootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, app.close())
}

// NewRootCmd builds the flashkeeper command tree
func NewRootCmd(opts Options) *cobra.Command {
	return newApp(opts).rootCmd()
}

func newApp(opts Options) *App {
	if opts.IO == nil {
		opts.IO = iocli.NewStdio()
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	return &App{opts: opts, v: config.New()}
}

func (app *App) rootCmd() *cobra.Command {
	opts := app.opts

	cmd := &cobra.Command{
		Use:           "flashkeeper",
		Short:         "Local-first flashcard manager (CLI + TUI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       opts.Build.Version,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  flashkeeper

  # Scriptable commands
  flashkeeper add --title Spanish --field 'hola::hello'
  flashkeeper list --query span
  flashkeeper export --dir backups
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// без подкоманды: TUI в терминале, иначе список
			if app.tuiMode {
				return tui.Run(cmd.Context(), app.tuiOptions())
			}
			return app.cli.runList(cmd.Context(), "", false)
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("Flashkeeper\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		opts.Build.Version, opts.Build.BuildDate, opts.Build.GitCommit))
	cmd.SetOut(opts.IO)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		app.tuiMode = cmd.Name() == "study" || (cmd == cmd.Root() && app.opts.IO.IsTerminal())
		return app.setup(cmd.Context())
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config", "", "Config file (default ./flashkeeper.yaml or ~/.config/flashkeeper/flashkeeper.yaml)")
	flags.String("db", config.DefaultDBPath, "Path to local database")
	flags.String("driver", config.DefaultDriver, "Storage backend (bolt|sqlite)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")

	// флаги имеют приоритет над файлом и окружением, если заданы явно
	_ = app.v.BindPFlag("storage.path", flags.Lookup("db"))
	_ = app.v.BindPFlag("storage.driver", flags.Lookup("driver"))
	_ = app.v.BindPFlag("log.level", flags.Lookup("log-level"))

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newUpdateCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newDeleteManyCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newStudyCmd(app))
	cmd.AddCommand(newThemeCmd(app))

	return cmd
}

// setup loads config, logging and storage and builds the core services
func (app *App) setup(ctx context.Context) error {
	cfg, err := config.Load(app.v, app.configFile)
	if err != nil {
		return err
	}
	app.cfg = cfg

	// TUI занимает терминал: логи только в файл
	var logOut io.Writer = app.opts.LogOutput
	if app.tuiMode {
		logOut = nil
	}
	lg, closeLog, err := logger.Setup(cfg.Log, logOut)
	if err != nil {
		return err
	}
	app.logger = lg
	app.closers = append(app.closers, closeLog)

	kv, err := app.openStorage(ctx)
	if err != nil {
		return err
	}

	ids, err := idgen.New(cfg.IDs.Scheme)
	if err != nil {
		return err
	}

	var notifier notify.Notifier = notify.Writer{W: app.opts.IO}
	if app.tuiMode {
		app.inbox = &notify.Queue{}
		notifier = app.inbox
	}

	repo := data.NewService(kv, data.Options{
		IDs:      ids,
		Clock:    clock.New(),
		Notifier: notifier,
		Logger:   lg,
	})
	exporter := transfer.NewExporter(repo, notifier, lg)
	themes := settings.NewThemes(kv)

	app.cli = New(app.opts.IO, repo, exporter, themes, cfg, lg)
	return nil
}

func (app *App) openStorage(ctx context.Context) (storage.KeyValueStorage, error) {
	if app.opts.Storage != nil {
		return app.opts.Storage, nil
	}

	var (
		kv  storage.KeyValueStorage
		err error
	)
	switch app.cfg.Storage.Driver {
	case "sqlite":
		kv, err = sqlite.New(ctx, app.cfg.Storage.Path)
	default:
		kv, err = boltdb.New(ctx, app.cfg.Storage.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	app.logger.Debug("storage opened", "driver", app.cfg.Storage.Driver, "path", app.cfg.Storage.Path)
	app.closers = append(app.closers, kv.Close)
	return kv, nil
}

// close releases resources in reverse order of acquisition
func (app *App) close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	return errors.Join(errs...)
}

func (app *App) tuiOptions() tui.Options {
	return tui.Options{
		Repo:          app.cli.repo,
		Exporter:      app.cli.exporter,
		Themes:        app.cli.themes,
		Inbox:         app.inbox,
		Logger:        app.logger,
		ExportDir:     app.cfg.Export.Dir,
		Theme:         settings.Theme(app.cfg.UI.Theme),
		ToastDuration: app.cfg.UI.ToastDuration,
	}
}
