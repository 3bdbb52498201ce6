package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// PlainFormatter formats output as a simple tab-separated table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	if r.Plan.Empty() {
		w.WriteString("no changes\n")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	if _, err := tw.Write([]byte("OP\tPATH\t\n")); err != nil {
		return err
	}

	for _, op := range r.Plan.Deletes {
		if _, err := fmt.Fprintf(tw, "delete\t%s\t\n", op.Path); err != nil {
			return err
		}
	}
	for _, op := range r.Plan.Renames {
		if _, err := fmt.Fprintf(tw, "rename\t%s\t-> %s\n", op.Source, op.Dest); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	switch {
	case r.DryRun:
		w.WriteString("dry run: nothing applied\n")
	case r.Applied:
		fmt.Fprintf(w, "applied %d operations\n", r.Plan.Len())
	}
	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
