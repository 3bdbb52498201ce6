// Package config loads edmv configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Config represents the application configuration.
type Config struct {
	// Force permits overwriting existing files without a cycle.
	Force bool `mapstructure:"force"`

	// Delete permits deletion dispositions in the edited listing.
	Delete bool `mapstructure:"delete"`

	// Git uses git rm / git mv for tracked paths.
	Git bool `mapstructure:"git"`

	// Marker is "empty" for blank-line deletion markers, or a prefix
	// symbol such as "#".
	Marker string `mapstructure:"marker"`

	// Output is the default output format (pretty, plain, json).
	Output string `mapstructure:"output"`

	Trash struct {
		// Permanent bypasses the system trash on deletion.
		Permanent bool `mapstructure:"permanent"`
	} `mapstructure:"trash"`

	History struct {
		Enabled       bool   `mapstructure:"enabled"`
		Path          string `mapstructure:"path"`
		RetentionDays int    `mapstructure:"retention_days"`
	} `mapstructure:"history"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/edmv/config.yaml
//   - $HOME/.config/edmv/config.yaml
//
// Environment variables are prefixed with EDMV_ (e.g., EDMV_MARKER).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "edmv"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "edmv"))

	v.SetEnvPrefix("EDMV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("force", false)
	v.SetDefault("delete", false)
	v.SetDefault("git", false)
	v.SetDefault("marker", DefaultMarker)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("trash.permanent", false)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.retention_days", DefaultRetentionDays)
	v.SetDefault("history.path", filepath.Join(homeDir, ".config", "edmv", ".history"))
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.HasPrefix(cfg.History.Path, "~") {
		cfg.History.Path = filepath.Join(homeDir, cfg.History.Path[1:])
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "edmv"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "edmv"), nil
}

// HistoryDir returns the history directory path.
func HistoryDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ".history"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	historyDir, err := HistoryDir()
	if err != nil {
		return err
	}

	defaultConfig := fmt.Sprintf(`# edmv configuration

# Permit overwriting existing files without --force
force: false

# Permit deletions without --delete
delete: false

# Use git rm / git mv for tracked paths
git: false

# Deletion marker: "empty" for blank lines, or a prefix symbol like "#"
marker: %q

# Default output format: pretty, plain, json
output: %q

trash:
  # Bypass the system trash and delete permanently
  permanent: false

history:
  enabled: true
  path: %q
  retention_days: %d

logging:
  level: %q
  # path: defaults to the XDG state directory
`, DefaultMarker, DefaultOutput, historyDir, DefaultRetentionDays, DefaultLogLevel)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
