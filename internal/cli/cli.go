package cli

import (
	"log/slog"

	"github.com/iudanet/flashkeeper/internal/config"
	"github.com/iudanet/flashkeeper/internal/data"
	"github.com/iudanet/flashkeeper/internal/iocli"
	"github.com/iudanet/flashkeeper/internal/settings"
	"github.com/iudanet/flashkeeper/internal/transfer"
)

// Cli runs the scriptable commands against the flashcard repository.
type Cli struct {
	io       iocli.IO
	repo     data.Service
	exporter *transfer.Exporter
	themes   *settings.Themes
	cfg      *config.Config
	logger   *slog.Logger
}

func New(io iocli.IO, repo data.Service, exporter *transfer.Exporter, themes *settings.Themes, cfg *config.Config, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:       io,
		repo:     repo,
		exporter: exporter,
		themes:   themes,
		cfg:      cfg,
		logger:   logger,
	}
}

// confirm asks a yes/no question; anything but yes/y is a no
func (c *Cli) confirm(question string) (bool, error) {
	answer, err := c.io.ReadInput(question + " (yes/no): ")
	if err != nil {
		return false, err
	}
	return answer == "yes" || answer == "y", nil
}
