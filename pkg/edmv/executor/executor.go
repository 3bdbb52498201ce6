// Package executor applies a compiled plan to the filesystem. Deletions run
// first, then renames in plan order; the first failure halts the run with
// operations already applied left in place. Actual removal and relocation
// are delegated to injected services so the package can be exercised with
// fakes.
package executor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattgleeson/edmv/pkg/edmv/logging"
	"github.com/mattgleeson/edmv/pkg/edmv/plan"
)

// Deleter removes a path. Implementations include the system trash and
// git-aware removal.
type Deleter interface {
	Delete(path string) error
}

// Mover relocates a file from src to dst. Implementations include a plain
// filesystem rename and git-aware move.
type Mover interface {
	Move(src, dst string) error
}

// RenameMover moves files with a plain filesystem rename.
type RenameMover struct{}

// Move renames src to dst.
func (RenameMover) Move(src, dst string) error {
	return os.Rename(src, dst)
}

// Executor applies plans through its configured services.
type Executor struct {
	deleter Deleter
	mover   Mover
	logger  *logging.Logger
}

// New creates an Executor using the given deletion and move services.
func New(deleter Deleter, mover Mover) *Executor {
	return &Executor{
		deleter: deleter,
		mover:   mover,
		logger:  logging.Get("executor"),
	}
}

// Apply executes the plan: all deletions, then all renames in order.
// Missing parent directories of a rename destination are created before the
// move. The first failure is returned immediately, wrapped with the
// offending path; no rollback is attempted since filesystem renames are not
// reliably transactional across platforms.
//
// Apply performs no validation of its own: the plan has already passed
// validation and classification, so a conflict recurring here (a race with
// an external process) surfaces as an ordinary failure from the underlying
// service.
func (e *Executor) Apply(p *plan.Plan) error {
	for _, op := range p.Deletes {
		e.logger.Info("deleting", "path", op.Path)
		if err := e.deleter.Delete(op.Path); err != nil {
			return fmt.Errorf("delete %q: %w", op.Path, err)
		}
	}

	for _, op := range p.Renames {
		if dir := filepath.Dir(op.Dest); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create directory %q: %w", dir, err)
			}
		}
		e.logger.Info("moving", "from", op.Source, "to", op.Dest)
		if err := e.mover.Move(op.Source, op.Dest); err != nil {
			return fmt.Errorf("move %q to %q: %w", op.Source, op.Dest, err)
		}
	}

	return nil
}
