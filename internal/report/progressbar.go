// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/avelis/pdfraster/pkg/types"
)

const barTemplate = `{{ bar . " " "━" "━" " " " "}} {{percent .}}`

// ProgressBarReporter renders a per-document progress bar on interactive
// terminals. Status lines and the outcome bookkeeping are delegated to an
// embedded WriterReporter writing to the same stream.
type ProgressBarReporter struct {
	*WriterReporter

	out io.Writer
	bar *pb.ProgressBar
}

// NewProgressBarReporter creates a reporter drawing bars and status lines
// on w.
func NewProgressBarReporter(w io.Writer) *ProgressBarReporter {
	return &ProgressBarReporter{
		WriterReporter: NewWriterReporter(w),
		out:            w,
	}
}

func (r *ProgressBarReporter) Progress(e types.ProgressEvent) {
	if e.Current == 1 {
		r.finishBar()
		r.bar = pb.New(e.Total).
			SetTemplateString(barTemplate).
			SetWriter(r.out).
			Start()
	}
	if r.bar != nil {
		r.bar.SetCurrent(int64(e.Current))
	}
}

func (r *ProgressBarReporter) FileStatus(e types.FileStatusEvent) {
	// A success or error line, terminal or incidental, should not be
	// drawn over an active bar.
	if e.Status.Terminal() {
		r.finishBar()
	}
	r.WriterReporter.FileStatus(e)
}

func (r *ProgressBarReporter) finishBar() {
	if r.bar != nil {
		r.bar.Finish()
		r.bar = nil
	}
}
