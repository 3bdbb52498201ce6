// Package editor obtains the edited filename listing from the user's text
// editor. The listing is written to a temporary file, the editor runs
// attached to the terminal, and the file is read back once it exits.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Service obtains an edited version of a text listing.
type Service interface {
	Edit(text string) (string, error)
}

// External runs the editor named by $VISUAL, then $EDITOR, falling back
// to vi.
type External struct{}

// Command returns the editor command that will be invoked.
func (External) Command() string {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	return editor
}

// Edit writes text to a temporary file, opens it in the editor, and returns
// the file contents after the editor exits. Any failure aborts the run
// before validation; nothing is applied from a failed editor session.
func (e External) Edit(text string) (string, error) {
	tmp, err := os.CreateTemp("", "edmv-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating listing file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing listing file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing listing file: %w", err)
	}

	cmd := exec.Command(e.Command(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor command failed: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited listing: %w", err)
	}
	return string(edited), nil
}
