package plan

import "errors"

// Validation errors. All are detected before any filesystem mutation.
var (
	// ErrCountMismatch indicates the edited listing has a different number
	// of lines than the input list.
	ErrCountMismatch = errors.New("listing line count does not match input count")

	// ErrDuplicateInput indicates two input entries are identical.
	ErrDuplicateInput = errors.New("duplicate input filename")

	// ErrMissingInput indicates an input entry does not exist on disk.
	ErrMissingInput = errors.New("input file does not exist")

	// ErrDuplicateOutput indicates two non-deletion outputs are identical.
	ErrDuplicateOutput = errors.New("duplicate output filename")

	// ErrCaseCollision indicates two outputs differ only by letter case,
	// which would silently clobber on a case-insensitive filesystem.
	ErrCaseCollision = errors.New("output filenames differ only by case")
)

// Classification errors.
var (
	// ErrDirectoryOverwrite indicates an output path names an existing
	// directory that is not itself being moved in this batch.
	ErrDirectoryOverwrite = errors.New("cannot overwrite directory")

	// ErrDeleteNotEnabled indicates the listing requests a deletion but
	// deletions are not enabled.
	ErrDeleteNotEnabled = errors.New("deletion is not enabled")

	// ErrOverwriteNotForced indicates an output path names an existing
	// file and overwriting is not enabled.
	ErrOverwriteNotForced = errors.New("output file already exists")
)

// ErrTempNameExhausted indicates the temporary name generator failed to
// find a free path within its retry budget.
var ErrTempNameExhausted = errors.New("could not generate a free temporary name")
