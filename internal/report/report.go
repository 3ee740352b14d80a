// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report provides pipeline event sinks for the CLI: a plain
// line-oriented reporter and a terminal progress-bar reporter.
package report

import (
	"fmt"
	"io"

	"github.com/avelis/pdfraster/pkg/types"
)

// WriterReporter prints one line per event to an io.Writer and tracks each
// document's latest status so the batch can be summarized afterwards.
type WriterReporter struct {
	w io.Writer

	// last holds the most recent status per filename; the terminal event
	// is always emitted last, so this is the document's outcome once the
	// batch finishes.
	last map[string]types.Status
}

// NewWriterReporter creates a reporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{
		w:    w,
		last: make(map[string]types.Status),
	}
}

func (r *WriterReporter) Progress(e types.ProgressEvent) {
	fmt.Fprintf(r.w, "  page %d/%d: %s\n", e.Current, e.Total, e.Filename)
}

func (r *WriterReporter) FileStatus(e types.FileStatusEvent) {
	switch e.Status {
	case types.StatusProcessing:
		fmt.Fprintf(r.w, "processing: %s\n", e.Filename)
	case types.StatusSuccess:
		if e.OutputPath != "" {
			fmt.Fprintf(r.w, "success: %s -> %s\n", e.Filename, e.OutputPath)
		} else {
			fmt.Fprintf(r.w, "success: %s\n", e.Filename)
		}
	case types.StatusError:
		fmt.Fprintf(r.w, "error:   %s (%s)\n", e.Filename, e.Error)
	default:
		fmt.Fprintf(r.w, "%s: %s\n", e.Status, e.Filename)
	}

	r.last[e.Filename] = e.Status
}

// Outcomes returns the number of documents whose latest status is success
// and error respectively.
func (r *WriterReporter) Outcomes() (succeeded, failed int) {
	for _, s := range r.last {
		switch s {
		case types.StatusSuccess:
			succeeded++
		case types.StatusError:
			failed++
		}
	}
	return succeeded, failed
}

// Summary formats the trailing batch line, e.g.
// "Batch summary: 2 succeeded, 1 failed (total: 3)".
func (r *WriterReporter) Summary() string {
	succeeded, failed := r.Outcomes()
	return fmt.Sprintf("Batch summary: %d succeeded, %d failed (total: %d)",
		succeeded, failed, succeeded+failed)
}
