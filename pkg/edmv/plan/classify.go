package plan

import (
	"fmt"
	"os"
	"path/filepath"
)

// Classified is the classifier output consumed by Resolve.
type Classified struct {
	Deletes []DeleteOp
	Renames []RenameOp

	// Pending holds the cleaned path of every rename source whose content
	// has not yet been relocated. Resolve consumes and mutates it.
	Pending map[string]bool
}

// Classify decides the disposition of each (input, spec) pair against the
// current filesystem state.
//
// An entry whose target equals its input is a no-op. A deletion requires
// opts.Delete. A target naming an existing directory is only legal when that
// directory is itself vacating its path in this batch; directories are never
// overwritten by a plain move. A target naming an existing file is a
// legitimate chain or cycle step when that file is vacating, and otherwise
// requires opts.Force. All checks are read-only.
func Classify(inputs []string, specs []Spec, opts Options) (*Classified, error) {
	// Paths that will no longer hold their current content once the batch
	// completes: renamed-away or deleted inputs. A destination colliding
	// with one of these is a chain step, not an overwrite.
	vacating := make(map[string]bool, len(inputs))
	for i, in := range inputs {
		if specs[i].Delete || specs[i].Target != filepath.Clean(in) {
			vacating[filepath.Clean(in)] = true
		}
	}

	c := &Classified{Pending: make(map[string]bool)}
	for i, in := range inputs {
		spec := specs[i]

		if !spec.Delete && spec.Target == filepath.Clean(in) {
			continue
		}

		if spec.Delete {
			if !opts.Delete {
				return nil, fmt.Errorf("%w: %q", ErrDeleteNotEnabled, in)
			}
			c.Deletes = append(c.Deletes, DeleteOp{Path: in})
			continue
		}

		info, err := os.Lstat(spec.Target)
		switch {
		case err == nil && info.IsDir():
			if !vacating[spec.Target] {
				return nil, fmt.Errorf("%w: %q", ErrDirectoryOverwrite, spec.Target)
			}
		case err == nil:
			if !vacating[spec.Target] && !opts.Force {
				return nil, fmt.Errorf("%w: %q (use --force to overwrite)", ErrOverwriteNotForced, spec.Target)
			}
		}

		c.Renames = append(c.Renames, RenameOp{Source: in, Dest: spec.Target})
		c.Pending[filepath.Clean(in)] = true
	}

	return c, nil
}
