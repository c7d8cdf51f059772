// Package config handles the XDG configuration directory, the optional
// config.yaml file and the paths derived from them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"todo/internal/state"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional YAML settings filename.
	ConfigFile = "config.yaml"

	// JSONStateFile is the default state filename for the json backend.
	JSONStateFile = "state.json"

	// SQLiteStateFile is the default state filename for the sqlite backend.
	SQLiteStateFile = "state.db"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// StateFile overrides the state path. Relative paths are resolved
	// against Dir.
	StateFile string `yaml:"state_file"`

	// Backend selects the store implementation: "json" or "sqlite".
	Backend string `yaml:"backend"`

	// LogLevel is the slog level used when Debug is off.
	LogLevel string `yaml:"log_level"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	// Log receives structured logs. Nil discards them.
	Log *slog.Logger `yaml:"-"`
}

// DefaultConfig returns a config with the built-in defaults for dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Dir:      dir,
		Backend:  state.BackendJSON,
		LogLevel: "warn",
	}
}

// New creates a Config for the default or specified config directory and
// applies config.yaml from that directory when it exists.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := DefaultConfig(dir)

	data, err := os.ReadFile(cfg.FilePath())
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", cfg.FilePath(), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", cfg.FilePath(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfg.FilePath(), err)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Validate checks the backend and log level values.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", state.BackendJSON, state.BackendSQLite:
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// StatePath returns the path of the state document for the configured backend.
func (c *Config) StatePath() string {
	if c.StateFile != "" {
		if filepath.IsAbs(c.StateFile) {
			return c.StateFile
		}
		return filepath.Join(c.Dir, c.StateFile)
	}
	if c.Backend == state.BackendSQLite {
		return filepath.Join(c.Dir, SQLiteStateFile)
	}
	return filepath.Join(c.Dir, JSONStateFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// The state file may live elsewhere; its store creates that directory.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Level returns the slog level to log at. Debug wins over LogLevel.
func (c *Config) Level() (slog.Level, error) {
	if c.Debug {
		return slog.LevelDebug, nil
	}
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return level, nil
}

// Logger returns the configured logger, or one that discards everything.
func (c *Config) Logger() *slog.Logger {
	if c.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Log
}
