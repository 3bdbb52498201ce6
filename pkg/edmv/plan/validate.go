package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validate checks the input list against the raw edited text and produces
// the spec list in positional correspondence with the inputs.
//
// The edited text is split into trimmed lines; line count must match the
// input count exactly, since positional correspondence is the only
// correctness signal available. Inputs must be unique and exist on disk.
// Non-deletion outputs must be unique both case-sensitively and after
// lower-casing; the latter is always an error to avoid silent clobbering
// on case-insensitive filesystems.
//
// Validate performs no filesystem mutation; read-only existence checks only.
func Validate(inputs []string, edited string, opts Options) ([]Spec, error) {
	lines := splitListing(edited)
	if len(lines) != len(inputs) {
		return nil, fmt.Errorf("%w: %d inputs, %d outputs", ErrCountMismatch, len(inputs), len(lines))
	}

	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if isMarker(in, opts) {
			return nil, fmt.Errorf("%w: %q", ErrMissingInput, in)
		}
		if seen[in] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateInput, in)
		}
		seen[in] = true
		if _, err := os.Lstat(in); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingInput, in)
		}
	}

	specs := make([]Spec, 0, len(lines))
	for _, line := range lines {
		if isMarker(line, opts) {
			specs = append(specs, Spec{Delete: true})
			continue
		}
		specs = append(specs, Spec{Target: filepath.Clean(line)})
	}

	exact := make(map[string]bool, len(specs))
	folded := make(map[string]string, len(specs))
	for _, s := range specs {
		if s.Delete {
			continue
		}
		if exact[s.Target] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOutput, s.Target)
		}
		exact[s.Target] = true

		lower := strings.ToLower(s.Target)
		if prev, ok := folded[lower]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrCaseCollision, prev, s.Target)
		}
		folded[lower] = s.Target
	}

	return specs, nil
}

// splitListing splits the edited text into trimmed lines. Only the single
// trailing newline most editors append is discarded; blank lines elsewhere
// survive so they can act as deletion markers.
func splitListing(edited string) []string {
	trimmed := strings.TrimSuffix(edited, "\n")
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// isMarker reports whether a listing line is a deletion marker under the
// configured marker style.
func isMarker(line string, opts Options) bool {
	switch opts.Marker {
	case MarkerPrefix:
		return opts.Prefix != "" && strings.HasPrefix(line, opts.Prefix)
	default:
		return line == ""
	}
}
