package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mattgleeson/edmv/pkg/edmv/config"
	"github.com/mattgleeson/edmv/pkg/edmv/editor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage edmv configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/edmv/config.yaml (if set)
  2. ~/.config/edmv/config.yaml

Environment variables can override config file settings using the EDMV_ prefix:
  EDMV_MARKER="#"
  EDMV_TRASH_PERMANENT=true
  EDMV_HISTORY_ENABLED=false`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file",
	Long: `Open the configuration file in your default editor.

The editor is determined by:
  1. $VISUAL environment variable
  2. $EDITOR environment variable
  3. Falls back to 'vi'

If the config file doesn't exist, a default one will be created first.`,
	RunE: runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		printError("Failed to load configuration: %v", err)
		// Show defaults anyway
		cfg = &config.Config{
			Marker: config.DefaultMarker,
			Output: config.DefaultOutput,
		}
		cfg.History.Enabled = true
		cfg.History.RetentionDays = config.DefaultRetentionDays
		cfg.Logging.Level = config.DefaultLogLevel
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("force:                  %t\n", cfg.Force)
	fmt.Printf("delete:                 %t\n", cfg.Delete)
	fmt.Printf("git:                    %t\n", cfg.Git)
	fmt.Printf("marker:                 %s\n", cfg.Marker)
	fmt.Printf("output:                 %s\n", cfg.Output)
	fmt.Printf("trash.permanent:        %t\n", cfg.Trash.Permanent)
	fmt.Printf("history.enabled:        %t\n", cfg.History.Enabled)
	fmt.Printf("history.path:           %s\n", cfg.History.Path)
	fmt.Printf("history.retention_days: %d days\n", cfg.History.RetentionDays)
	fmt.Printf("logging.level:          %s\n", cfg.Logging.Level)

	fmt.Println("\nEnvironment Overrides:")
	fmt.Println("----------------------")
	envVars := []struct {
		name string
		key  string
	}{
		{"EDMV_FORCE", "force"},
		{"EDMV_DELETE", "delete"},
		{"EDMV_GIT", "git"},
		{"EDMV_MARKER", "marker"},
		{"EDMV_OUTPUT", "output"},
		{"EDMV_TRASH_PERMANENT", "trash.permanent"},
		{"EDMV_HISTORY_ENABLED", "history.enabled"},
		{"EDMV_HISTORY_PATH", "history.path"},
		{"EDMV_HISTORY_RETENTION_DAYS", "history.retention_days"},
	}

	anyOverrides := false
	for _, ev := range envVars {
		if val := os.Getenv(ev.name); val != "" {
			fmt.Printf("%s=%s\n", ev.name, val)
			anyOverrides = true
		}
	}
	if !anyOverrides {
		fmt.Println("(none)")
	}

	return nil
}

// runConfigEdit opens the config file in an editor.
func runConfigEdit(cmd *cobra.Command, args []string) error {
	// Ensure config file exists
	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	editorBin := editor.External{}.Command()
	printVerbose("Opening %s with %s", configPath, editorBin)

	editorCmd := exec.Command(editorBin, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor command failed: %w", err)
	}

	return nil
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		printInfo("Config file already exists: %s", configPath)
		printInfo("Use 'edmv config edit' to modify it.")
		return nil
	}

	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	printInfo("Created default config file: %s", configPath)
	return nil
}

// runConfigPath shows the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	fmt.Println(configPath)

	if _, err := os.Stat(configPath); err == nil {
		printVerbose("File exists")
	} else if os.IsNotExist(err) {
		printVerbose("File does not exist (will use defaults)")
	}

	return nil
}
