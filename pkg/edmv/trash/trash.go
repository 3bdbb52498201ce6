// Package trash provides the trash-based deletion service for edmv.
// Files are moved to the system trash where available, falling back to
// permanent deletion when no trash support is detected.
package trash

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// commandTimeout is the maximum time to wait for trash commands.
const commandTimeout = 30 * time.Second

// Trash deletes files by moving them to the system trash.
// With Permanent set, files are removed outright instead.
type Trash struct {
	// Permanent skips the system trash and deletes immediately.
	Permanent bool
}

// Delete moves a file or directory to the system trash.
// On macOS it uses AppleScript to move to Trash; on Linux it tries gio
// trash then trash-cli. It falls back to permanent deletion when no trash
// support is available.
func (t Trash) Delete(path string) error {
	// The path must exist before attempting to trash it.
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("cannot trash %q: %w", path, err)
	}

	// Trash tools need an absolute path to behave reliably.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %q: %w", path, err)
	}

	if t.Permanent {
		return permanentDelete(absPath)
	}

	switch runtime.GOOS {
	case "darwin":
		return trashMacOS(absPath)
	case "linux":
		return trashLinux(absPath)
	default:
		return permanentDelete(absPath)
	}
}

// trashMacOS moves a file to Trash on macOS using AppleScript, which
// integrates with Finder's "Put Back" functionality.
func trashMacOS(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %q`, path)
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return permanentDelete(path)
	}
	return nil
}

// trashLinux moves a file to trash on Linux using available tools.
func trashLinux(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	// gio first (GNOME/GTK desktops), then trash-cli (XDG compliant).
	if gioPath, err := exec.LookPath("gio"); err == nil {
		cmd := exec.CommandContext(ctx, gioPath, "trash", path)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	if trashPath, err := exec.LookPath("trash-put"); err == nil {
		cmd := exec.CommandContext(ctx, trashPath, path)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return permanentDelete(path)
}

// permanentDelete removes a file or directory outright.
func permanentDelete(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete %q: %w", path, err)
	}
	return nil
}
