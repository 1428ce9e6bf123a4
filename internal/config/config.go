package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds the session archive settings.
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Archive bool   `mapstructure:"archive"`
}

// LogConfig holds logger settings. An empty File discards log output.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartMode string `mapstructure:"start_mode"`
	LapRows   int    `mapstructure:"lap_rows"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"db":        "database.path",
	"log-level": "log.level",
	"log-file":  "log.file",
	"mode":      "ui.start_mode",
}

// Load reads configuration from defaults, the config file, CLOCK_TUI_ env
// vars and finally flags, each overriding the previous. Flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "clock_tui", "sessions.db"))
	v.SetDefault("database.archive", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.start_mode", "clock")
	v.SetDefault("ui.lap_rows", 7)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CLOCK_TUI_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "clock_tui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOCK_TUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, errors.Wrapf(err, "bind flag %s", name)
			}
		}
		if f := flags.Lookup("no-archive"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("database.archive", false)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the widget cannot honor.
func (c Config) Validate() error {
	switch c.UI.StartMode {
	case "clock", "stopwatch":
	default:
		return errors.Errorf("invalid ui.start_mode %q: want clock or stopwatch", c.UI.StartMode)
	}
	if c.UI.LapRows <= 0 {
		return errors.Errorf("invalid ui.lap_rows %d: must be positive", c.UI.LapRows)
	}
	if c.Database.Archive && c.Database.Path == "" {
		return errors.New("database.path is required when archiving is enabled")
	}
	return nil
}
