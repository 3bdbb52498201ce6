package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Manifest manages the batch journal on the filesystem. Each applied batch
// is stored as one JSON file in the journal directory.
type Manifest struct {
	dir string
}

// New creates a Manifest with the given directory. The directory is not
// created until EnsureDir is called.
func New(dir string) (*Manifest, error) {
	if dir == "" {
		return nil, errors.New("manifest directory cannot be empty")
	}
	return &Manifest{dir: dir}, nil
}

// EnsureDir creates the journal directory if it does not exist.
func (m *Manifest) EnsureDir() error {
	return os.MkdirAll(m.dir, 0o755)
}

// LogBatch records an applied batch and returns the created entry.
func (m *Manifest) LogBatch(renames []RenameRecord, deletes []DeleteRecord) (*Entry, error) {
	var totalBytes int64
	for _, r := range renames {
		totalBytes += r.Size
	}
	for _, d := range deletes {
		totalBytes += d.Size
	}

	entry := &Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Renames:   renames,
		Deletes:   deletes,
		Summary: Summary{
			Renames:    len(renames),
			Deletes:    len(deletes),
			TotalBytes: totalBytes,
		},
	}

	if err := m.writeEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to write manifest entry: %w", err)
	}

	return entry, nil
}

// writeEntry writes an entry to a JSON file in the journal directory,
// atomically via a temp file and rename.
func (m *Manifest) writeEntry(entry *Entry) error {
	filePath := filepath.Join(m.dir, entry.Timestamp.Format("20060102T150405")+"-"+entry.ID+".json")

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// List returns entries sorted newest first. If limit is 0 or negative, all
// entries are returned.
func (m *Manifest) List(limit int) ([]Entry, error) {
	files, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read manifest directory: %w", err)
	}

	entries := []Entry{}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		entry, err := m.readEntryFile(f.Name())
		if err != nil {
			// Skip files that can't be parsed.
			continue
		}
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// Get retrieves a specific entry by ID.
func (m *Manifest) Get(id string) (*Entry, error) {
	if id == "" {
		return nil, errors.New("entry ID cannot be empty")
	}

	files, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		entry, err := m.readEntryFile(f.Name())
		if err != nil {
			continue
		}

		if entry.ID == id {
			return entry, nil
		}
	}

	return nil, fmt.Errorf("entry not found: %s", id)
}

// readEntryFile reads and parses a journal entry from a JSON file.
func (m *Manifest) readEntryFile(filename string) (*Entry, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return &entry, nil
}

// Cleanup removes entries older than retentionDays.
func (m *Manifest) Cleanup(retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	files, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read manifest directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		entry, err := m.readEntryFile(f.Name())
		if err != nil {
			continue
		}

		if entry.Timestamp.Before(cutoff) {
			if err := os.Remove(filepath.Join(m.dir, f.Name())); err != nil {
				return fmt.Errorf("failed to remove entry %s: %w", entry.ID, err)
			}
		}
	}

	return nil
}
