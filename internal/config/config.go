// Package config loads flashkeeper settings from defaults, an optional
// config file, FLASHKEEPER_* environment variables and command-line flags.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	IDs     IDsConfig     `mapstructure:"ids" validate:"required"`
	Export  ExportConfig  `mapstructure:"export" validate:"required"`
	UI      UIConfig      `mapstructure:"ui" validate:"required"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=bolt sqlite"`
	Path   string `mapstructure:"path" validate:"required"`
}

// LogConfig configures slog output.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
	// File пустой: stderr в CLI, без логов в TUI
	File string `mapstructure:"file"`
}

// IDsConfig selects the flashcard id scheme.
type IDsConfig struct {
	Scheme string `mapstructure:"scheme" validate:"required,oneof=nanoid uuid"`
}

// ExportConfig configures where flashcards.json is written.
type ExportConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	// Theme пустой: сохраненная тема или фон терминала
	Theme         string        `mapstructure:"theme" validate:"omitempty,oneof=light dark"`
	ToastDuration time.Duration `mapstructure:"toast_duration" validate:"gt=0"`
}
