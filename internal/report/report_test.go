// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/avelis/pdfraster/pkg/types"
)

func TestWriterReporter_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterReporter(&buf)

	r.FileStatus(types.FileStatusEvent{Filename: "doc", Status: types.StatusProcessing})
	r.Progress(types.ProgressEvent{Filename: "doc", Current: 1, Total: 2})
	r.Progress(types.ProgressEvent{Filename: "doc", Current: 2, Total: 2})
	r.FileStatus(types.FileStatusEvent{
		Filename:   "doc",
		Status:     types.StatusSuccess,
		OutputPath: "out/doc_merged.png",
	})

	out := buf.String()
	for _, want := range []string{
		"processing: doc",
		"page 1/2: doc",
		"page 2/2: doc",
		"success: doc -> out/doc_merged.png",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriterReporter_OutcomesUseLatestStatus(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterReporter(&buf)

	// Incidental per-page error followed by a terminal success: the
	// document counts as succeeded.
	r.FileStatus(types.FileStatusEvent{Filename: "a", Status: types.StatusProcessing})
	r.FileStatus(types.FileStatusEvent{Filename: "a", Status: types.StatusError, Error: "render error: page 2"})
	r.FileStatus(types.FileStatusEvent{Filename: "a", Status: types.StatusSuccess, OutputPath: "a.png"})

	r.FileStatus(types.FileStatusEvent{Filename: "b", Status: types.StatusProcessing})
	r.FileStatus(types.FileStatusEvent{Filename: "b", Status: types.StatusError, Error: "load error"})

	succeeded, failed := r.Outcomes()
	if succeeded != 1 || failed != 1 {
		t.Errorf("outcomes = (%d, %d), want (1, 1)", succeeded, failed)
	}
	if got := r.Summary(); !strings.Contains(got, "1 succeeded, 1 failed (total: 2)") {
		t.Errorf("summary = %q", got)
	}
}

func TestProgressBarReporter_CountsLikeWriter(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressBarReporter(&buf)

	r.FileStatus(types.FileStatusEvent{Filename: "doc", Status: types.StatusProcessing})
	r.Progress(types.ProgressEvent{Filename: "doc", Current: 1, Total: 1})
	r.FileStatus(types.FileStatusEvent{Filename: "doc", Status: types.StatusSuccess, OutputPath: "doc.png"})

	succeeded, failed := r.Outcomes()
	if succeeded != 1 || failed != 0 {
		t.Errorf("outcomes = (%d, %d), want (1, 0)", succeeded, failed)
	}
	if r.bar != nil {
		t.Error("bar should be finished after the terminal event")
	}
}
