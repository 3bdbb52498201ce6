package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattgleeson/edmv/pkg/edmv/config"
	"github.com/mattgleeson/edmv/pkg/edmv/manifest"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View batch history",
	Long: `View the history of applied rename/delete batches.

The journal stores a record of every applied batch, including which files
were renamed or deleted.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a specific batch",
	Long:  `Display detailed information about a specific batch by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up old history entries",
	Long:  `Remove history entries older than the retention period.`,
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getManifest returns a manifest instance with the configured directory.
func getManifest() (*manifest.Manifest, error) {
	cfg, err := config.Load()
	if err != nil {
		// Use default history path if config fails to load
		historyDir, dirErr := config.HistoryDir()
		if dirErr != nil {
			return nil, fmt.Errorf("failed to get history directory: %w", dirErr)
		}
		return manifest.New(historyDir)
	}

	return manifest.New(cfg.History.Path)
}

// runHistory lists recent batches.
func runHistory(cmd *cobra.Command, args []string) error {
	m, err := getManifest()
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	entries, err := m.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		printInfo("No history entries found.")
		printInfo("Run 'edmv [files...]' to rename some files.")
		return nil
	}

	fmt.Printf("\n%-36s  %-20s  %-8s  %-8s  %-10s\n", "ID", "WHEN", "RENAMES", "DELETES", "SIZE")
	fmt.Println(strings.Repeat("-", 92))

	for _, entry := range entries {
		fmt.Printf("%-36s  %-20s  %-8d  %-8d  %-10s\n",
			truncateString(entry.ID, 36),
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Summary.Renames,
			entry.Summary.Deletes,
			humanize.IBytes(uint64(entry.Summary.TotalBytes)),
		)
	}

	fmt.Println(strings.Repeat("-", 92))
	fmt.Printf("\nShowing %d entries. Use --limit to see more.\n", len(entries))
	fmt.Println("Use 'edmv history show <id>' for details on a specific batch.")

	return nil
}

// runHistoryShow displays details of a specific batch.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	m, err := getManifest()
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	entry, err := m.Get(id)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	fmt.Println("\nBatch Details")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("ID:         %s\n", entry.ID)
	fmt.Printf("Timestamp:  %s\n", entry.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Renames:    %d\n", entry.Summary.Renames)
	fmt.Printf("Deletes:    %d\n", entry.Summary.Deletes)
	fmt.Printf("Total Size: %s\n", humanize.IBytes(uint64(entry.Summary.TotalBytes)))

	if len(entry.Renames) > 0 {
		fmt.Println("\nRenames:")
		fmt.Println(strings.Repeat("-", 60))
		for _, r := range entry.Renames {
			fmt.Printf("%-12s  %s -> %s\n", humanize.IBytes(uint64(r.Size)), r.Source, r.Dest)
		}
	}

	if len(entry.Deletes) > 0 {
		fmt.Println("\nDeletes:")
		fmt.Println(strings.Repeat("-", 60))
		for _, d := range entry.Deletes {
			fmt.Printf("%-12s  %s\n", humanize.IBytes(uint64(d.Size)), d.Path)
		}
	}

	return nil
}

// runHistoryClean removes old history entries.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	m, err := manifest.New(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	retentionDays := cfg.History.RetentionDays
	if retentionDays <= 0 {
		retentionDays = config.DefaultRetentionDays
	}

	printInfo("Cleaning history entries older than %d days...", retentionDays)

	if err := m.Cleanup(retentionDays); err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}

	printInfo("History cleanup complete.")
	return nil
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
