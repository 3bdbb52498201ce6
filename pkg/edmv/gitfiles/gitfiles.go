// Package gitfiles provides git-aware deletion and move services.
// Paths tracked by git are removed with git rm and relocated with git mv,
// keeping the index in step with the filesystem; untracked paths fall back
// to plain filesystem operations.
package gitfiles

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// commandTimeout is the maximum time to wait for a git command.
const commandTimeout = 30 * time.Second

// Service deletes and moves files through git when they are tracked.
// The zero value operates in the current working directory.
type Service struct {
	// Dir is the working directory for git commands. Empty means the
	// process working directory.
	Dir string
}

// Available reports whether a git binary can be found.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Tracked reports whether path is tracked by the surrounding repository.
// Untracked paths, or paths outside any repository, return false.
func (s Service) Tracked(path string) bool {
	return s.run("ls-files", "--error-unmatch", "--", path) == nil
}

// Delete removes path with git rm when tracked, otherwise removes it from
// the filesystem directly.
func (s Service) Delete(path string) error {
	if s.Tracked(path) {
		if err := s.run("rm", "-r", "--quiet", "--", path); err != nil {
			return fmt.Errorf("git rm %q: %w", path, err)
		}
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete %q: %w", path, err)
	}
	return nil
}

// Move relocates src to dst with git mv when src is tracked, otherwise
// with a plain rename. git mv stages the move so the rename survives the
// next commit as a rename rather than a delete/add pair.
func (s Service) Move(src, dst string) error {
	if s.Tracked(src) {
		if err := s.run("mv", "--", src, dst); err != nil {
			return fmt.Errorf("git mv %q to %q: %w", src, dst, err)
		}
		return nil
	}
	return os.Rename(src, dst)
}

// run executes a git subcommand with the service working directory.
func (s Service) run(args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.Dir
	return cmd.Run()
}
