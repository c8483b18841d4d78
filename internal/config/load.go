package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iudanet/flashkeeper/internal/idgen"
	"github.com/iudanet/flashkeeper/internal/notify"
	"github.com/iudanet/flashkeeper/internal/validation"
)

// EnvPrefix префикс переменных окружения: FLASHKEEPER_STORAGE_PATH и т.д.
const EnvPrefix = "FLASHKEEPER"

// Defaults
const (
	DefaultDriver = "bolt"
	DefaultDBPath = "flashkeeper.db"
)

// New returns a viper instance with defaults and environment binding.
// Command-line flags are bound to it by the caller before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("storage.driver", DefaultDriver)
	v.SetDefault("storage.path", DefaultDBPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("ids.scheme", idgen.SchemeNanoID)
	v.SetDefault("export.dir", ".")
	v.SetDefault("ui.theme", "")
	v.SetDefault("ui.toast_duration", notify.DefaultToastDuration)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configFile (or flashkeeper.yaml from the working directory
// or $HOME/.config/flashkeeper when configFile is empty), applies it on
// top of defaults and validates the result. A missing default config file
// is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("flashkeeper")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "flashkeeper"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
