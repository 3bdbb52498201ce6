// Package plan compiles an edited file listing into an ordered sequence of
// delete and rename operations that is safe to apply to the filesystem.
//
// Compilation runs in three stages: Validate checks the listing pair for
// structural problems, Classify decides the disposition of each entry against
// current filesystem state, and Resolve rewrites the rename sequence so that
// no operation overwrites a file whose content is still needed by a later
// operation. Building a plan never mutates the filesystem; only read-only
// existence and type checks are performed.
package plan

// MarkerStyle selects how a deletion is expressed in the edited listing.
type MarkerStyle int

const (
	// MarkerEmptyLine treats a blank line as a deletion request.
	MarkerEmptyLine MarkerStyle = iota

	// MarkerPrefix treats a line starting with the configured prefix
	// symbol as a deletion request.
	MarkerPrefix
)

// Options configures plan construction.
type Options struct {
	// Force permits overwriting existing regular files that are not
	// themselves part of the batch.
	Force bool

	// Delete permits deletion dispositions in the edited listing.
	Delete bool

	// Marker selects the deletion marker style.
	Marker MarkerStyle

	// Prefix is the deletion prefix symbol used with MarkerPrefix
	// (for example "#"). Ignored with MarkerEmptyLine.
	Prefix string
}

// Spec is the desired fate of one input entry, in positional correspondence
// with the input list.
type Spec struct {
	// Delete requests removal of the corresponding input.
	Delete bool

	// Target is the cleaned destination path. Empty when Delete is set.
	Target string
}

// RenameOp is a single scheduled move of Source to Dest.
type RenameOp struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

// DeleteOp is a single scheduled removal.
type DeleteOp struct {
	Path string `json:"path"`
}

// Plan is the ordered set of operations produced by compilation.
// Deletes are applied first, then Renames in order. A built plan is
// immutable input to the executor.
type Plan struct {
	Deletes []DeleteOp `json:"deletes"`
	Renames []RenameOp `json:"renames"`
}

// Empty reports whether the plan contains no operations.
func (p *Plan) Empty() bool {
	return len(p.Deletes) == 0 && len(p.Renames) == 0
}

// Len returns the total number of operations in the plan.
func (p *Plan) Len() int {
	return len(p.Deletes) + len(p.Renames)
}
