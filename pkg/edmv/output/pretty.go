package output

import (
	"bytes"
	"fmt"
	"strings"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	if r.Plan.Empty() {
		w.WriteString(MutedStyle.Render("No changes."))
		w.WriteString("\n")
		return nil
	}

	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	for _, op := range r.Plan.Deletes {
		line := DeleteStyle.Render("delete ") + PathStyle.Render(op.Path)
		w.WriteString(line)
		w.WriteString("\n")
	}
	for _, op := range r.Plan.Renames {
		line := PathStyle.Render(op.Source) + ArrowStyle.Render(" -> ") + PathStyle.Render(op.Dest)
		w.WriteString(line)
		w.WriteString("\n")
	}

	w.WriteString("\n")
	w.WriteString(f.formatStatus(r))
	w.WriteString("\n")
	return nil
}

// formatHeader builds the summary box with batch metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s %s",
		LabelStyle.Render("Files:"),
		ValueStyle.Render(fmt.Sprintf("%d", r.Inputs))))
	parts = append(parts, fmt.Sprintf("%s %s",
		LabelStyle.Render("Renames:"),
		ValueStyle.Render(fmt.Sprintf("%d", len(r.Plan.Renames)))))
	parts = append(parts, fmt.Sprintf("%s %s",
		LabelStyle.Render("Deletes:"),
		ValueStyle.Render(fmt.Sprintf("%d", len(r.Plan.Deletes)))))

	return HeaderBox.Render(strings.Join(parts, "  "))
}

// formatStatus returns the applied / dry-run status line.
func (f *PrettyFormatter) formatStatus(r *Result) string {
	switch {
	case r.DryRun:
		return MutedStyle.Render("Dry run: nothing applied.")
	case r.Applied:
		return SuccessStyle.Render(fmt.Sprintf("Applied %d operations.", r.Plan.Len()))
	default:
		return MutedStyle.Render("Plan not applied.")
	}
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
