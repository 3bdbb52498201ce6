package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattgleeson/edmv/pkg/edmv/config"
	"github.com/mattgleeson/edmv/pkg/edmv/editor"
	"github.com/mattgleeson/edmv/pkg/edmv/executor"
	"github.com/mattgleeson/edmv/pkg/edmv/gitfiles"
	"github.com/mattgleeson/edmv/pkg/edmv/logging"
	"github.com/mattgleeson/edmv/pkg/edmv/manifest"
	"github.com/mattgleeson/edmv/pkg/edmv/output"
	"github.com/mattgleeson/edmv/pkg/edmv/plan"
	"github.com/mattgleeson/edmv/pkg/edmv/trash"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "edmv [files...]",
		Short: "Batch rename or delete files using your text editor",
		Long: `edmv opens a list of filenames in the editor named by $VISUAL or
$EDITOR, one per line. Edit the lines, save, and exit: changed lines become
renames, blank lines become deletions (with --delete), unchanged lines are
left alone. Rename chains and swaps are resolved safely through temporary
names, and missing destination directories are created as required.

Examples:
  edmv *.mp3                 # Rename music files in the editor
  edmv -f *.jpg              # Allow overwriting existing files
  edmv --delete *.log        # Blank lines in the listing delete files
  edmv -g src/*.go           # Use git mv / git rm for tracked files
  edmv -n *.txt              # Dry run: print the plan, change nothing`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runBatch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/edmv/config.yaml)")
	rootCmd.Flags().BoolP("force", "f", false, "overwrite existing files")
	rootCmd.Flags().Bool("delete", false, "allow deletion via the listing's deletion marker")
	rootCmd.Flags().BoolP("git", "g", false, "use git rm / git mv for tracked paths")
	rootCmd.Flags().BoolP("dry-run", "n", false, "print the plan without applying it")
	rootCmd.Flags().String("marker", "", `deletion marker: "empty" or a prefix symbol like "#"`)
	rootCmd.Flags().StringP("output", "o", "", "output format (pretty, plain, json)")
	rootCmd.Flags().BoolP("json", "j", false, "shorthand for --output json")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	_ = viper.BindPFlag("force", rootCmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("delete", rootCmd.Flags().Lookup("delete"))
	_ = viper.BindPFlag("git", rootCmd.Flags().Lookup("git"))
	_ = viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("marker", rootCmd.Flags().Lookup("marker"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "edmv"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "edmv"))
		}
	}

	viper.SetEnvPrefix("EDMV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("marker", config.DefaultMarker)
	viper.SetDefault("output", config.DefaultOutput)
	viper.SetDefault("trash.permanent", false)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.retention_days", config.DefaultRetentionDays)
	viper.SetDefault("logging.level", config.DefaultLogLevel)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runBatch is the main pipeline: editor round-trip, plan compilation,
// execution, journaling.
func runBatch(cmd *cobra.Command, args []string) error {
	// Like the classic tools in this lineage, no arguments is a no-op.
	if len(args) == 0 {
		return nil
	}

	if err := initLogging(); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	logger := logging.Get("edmv")

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		inputs = append(inputs, strings.TrimSpace(arg))
	}

	opts := planOptions()

	edited, err := editor.External{}.Edit(strings.Join(inputs, "\n") + "\n")
	if err != nil {
		return err
	}

	specs, err := plan.Validate(inputs, edited, opts)
	if err != nil {
		return err
	}

	classified, err := plan.Classify(inputs, specs, opts)
	if err != nil {
		return err
	}

	// The classified mappings, not the resolved ones, go into the journal:
	// temporary hops are an execution detail.
	renameRecords, deleteRecords := batchRecords(classified)

	renames, err := plan.Resolve(classified.Renames, classified.Pending, plan.NewTempNamer())
	if err != nil {
		return err
	}

	compiled := &plan.Plan{Deletes: classified.Deletes, Renames: renames}
	result := &output.Result{Plan: compiled, Inputs: len(inputs), DryRun: viper.GetBool("dry_run")}

	if result.DryRun {
		return render(result)
	}

	if compiled.Empty() {
		logger.Debug("empty plan, nothing to do")
		return render(result)
	}

	deleter, mover, err := buildServices()
	if err != nil {
		return err
	}

	if err := executor.New(deleter, mover).Apply(compiled); err != nil {
		return err
	}
	result.Applied = true

	if viper.GetBool("history.enabled") {
		if err := journalBatch(renameRecords, deleteRecords); err != nil {
			// The batch itself succeeded; a journaling failure is not fatal.
			logger.Warn("failed to record history", "error", err)
		}
	}

	return render(result)
}

// initLogging configures the logging system from viper state.
func initLogging() error {
	consoleLevel := ""
	if viper.GetBool("verbose") {
		consoleLevel = "debug"
	}
	return logging.Init(logging.Config{
		Level:        viper.GetString("logging.level"),
		Path:         viper.GetString("logging.path"),
		ConsoleLevel: consoleLevel,
	})
}

// planOptions assembles plan options from viper state.
func planOptions() plan.Options {
	opts := plan.Options{
		Force:  viper.GetBool("force"),
		Delete: viper.GetBool("delete"),
	}
	if marker := viper.GetString("marker"); marker != "" && marker != "empty" {
		opts.Marker = plan.MarkerPrefix
		opts.Prefix = marker
	}
	return opts
}

// buildServices selects the deletion and move services for this run.
func buildServices() (executor.Deleter, executor.Mover, error) {
	if viper.GetBool("git") {
		if !gitfiles.Available() {
			return nil, nil, errors.New("--git requires a git binary on PATH")
		}
		svc := gitfiles.Service{}
		return svc, svc, nil
	}
	return trash.Trash{Permanent: viper.GetBool("trash.permanent")}, executor.RenameMover{}, nil
}

// batchRecords converts the classified operations into journal records,
// capturing source sizes before anything is applied.
func batchRecords(c *plan.Classified) ([]manifest.RenameRecord, []manifest.DeleteRecord) {
	renames := make([]manifest.RenameRecord, 0, len(c.Renames))
	for _, op := range c.Renames {
		rec := manifest.RenameRecord{Source: op.Source, Dest: op.Dest}
		if info, err := os.Lstat(op.Source); err == nil {
			rec.Size = info.Size()
		}
		renames = append(renames, rec)
	}

	deletes := make([]manifest.DeleteRecord, 0, len(c.Deletes))
	for _, op := range c.Deletes {
		rec := manifest.DeleteRecord{Path: op.Path}
		if info, err := os.Lstat(op.Path); err == nil {
			rec.Size = info.Size()
		}
		deletes = append(deletes, rec)
	}

	return renames, deletes
}

// journalBatch appends the applied batch to the history journal.
func journalBatch(renames []manifest.RenameRecord, deletes []manifest.DeleteRecord) error {
	m, err := getManifest()
	if err != nil {
		return err
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	_, err = m.LogBatch(renames, deletes)
	return err
}

// render prints the result through the selected formatter.
func render(r *output.Result) error {
	if getQuiet() {
		return nil
	}

	name := viper.GetString("output")
	if viper.GetBool("json") {
		name = "json"
	}

	formatter, err := output.Get(name)
	if err != nil {
		return fmt.Errorf("unknown output format %q (available: %s)", name, strings.Join(output.Available(), ", "))
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, r); err != nil {
		return err
	}
	fmt.Print(buf.String())
	return nil
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
