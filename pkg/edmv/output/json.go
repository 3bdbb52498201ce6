package output

import (
	"bytes"
	"encoding/json"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Deletes []jsonDelete `json:"deletes"`
	Renames []jsonRename `json:"renames"`
	Meta    jsonMeta     `json:"meta"`
}

// jsonDelete represents a deletion in JSON output.
type jsonDelete struct {
	Path string `json:"path"`
}

// jsonRename represents a rename in JSON output.
type jsonRename struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

// jsonMeta represents run metadata in JSON output.
type jsonMeta struct {
	Inputs     int  `json:"inputs"`
	Operations int  `json:"operations"`
	DryRun     bool `json:"dry_run"`
	Applied    bool `json:"applied"`
}

// JSONFormatter formats output as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := jsonOutput{
		Deletes: []jsonDelete{},
		Renames: []jsonRename{},
		Meta: jsonMeta{
			Inputs:     r.Inputs,
			Operations: r.Plan.Len(),
			DryRun:     r.DryRun,
			Applied:    r.Applied,
		},
	}
	for _, op := range r.Plan.Deletes {
		out.Deletes = append(out.Deletes, jsonDelete{Path: op.Path})
	}
	for _, op := range r.Plan.Renames {
		out.Renames = append(out.Renames, jsonRename{Source: op.Source, Dest: op.Dest})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
