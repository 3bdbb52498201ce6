package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestHome points config discovery at a throwaway directory.
func setTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	setTestHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Force)
	assert.False(t, cfg.Delete)
	assert.False(t, cfg.Git)
	assert.Equal(t, DefaultMarker, cfg.Marker)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, DefaultRetentionDays, cfg.History.RetentionDays)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	home := setTestHome(t)
	configDir := filepath.Join(home, ".config", "edmv")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := "force: true\nmarker: \"#\"\noutput: plain\nhistory:\n  retention_days: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Force)
	assert.Equal(t, "#", cfg.Marker)
	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, 7, cfg.History.RetentionDays)
}

func TestLoad_EnvOverride(t *testing.T) {
	setTestHome(t)
	t.Setenv("EDMV_MARKER", "#")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.Marker)
}

func TestLoad_XDGConfigHome(t *testing.T) {
	xdgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgHome)
	configDir := filepath.Join(xdgHome, "edmv")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("delete: true\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Delete)
}

func TestConfigDir(t *testing.T) {
	home := setTestHome(t)

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "edmv"), dir)

	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
	dir, err = ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/xdg/edmv", dir)
}

func TestWriteDefault(t *testing.T) {
	home := setTestHome(t)
	configPath := filepath.Join(home, ".config", "edmv", "config.yaml")

	require.NoError(t, WriteDefault())
	_, err := os.Stat(configPath)
	require.NoError(t, err)

	// The generated file parses back to the defaults.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultMarker, cfg.Marker)
	assert.Equal(t, DefaultOutput, cfg.Output)

	// Writing again leaves the existing file alone.
	require.NoError(t, os.WriteFile(configPath, []byte("output: plain\n"), 0o644))
	require.NoError(t, WriteDefault())
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Output)
}
