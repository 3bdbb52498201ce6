// Package manifest keeps a journal of applied edmv batches.
package manifest

import "time"

// RenameRecord is one applied rename in a batch.
type RenameRecord struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
	Size   int64  `json:"size,omitempty"`
}

// DeleteRecord is one applied deletion in a batch.
type DeleteRecord struct {
	Path string `json:"path"`
	Size int64  `json:"size,omitempty"`
}

// Summary contains batch totals.
type Summary struct {
	Renames    int   `json:"renames"`
	Deletes    int   `json:"deletes"`
	TotalBytes int64 `json:"total_bytes"`
}

// Entry represents a single applied batch.
type Entry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Renames   []RenameRecord `json:"renames,omitempty"`
	Deletes   []DeleteRecord `json:"deletes,omitempty"`
	Summary   Summary        `json:"summary"`
}
