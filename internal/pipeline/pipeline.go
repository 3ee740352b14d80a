// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates batch document-to-image conversion: page
// selection, per-page rendering, encoding, optional vertical merging, and
// progress/status event emission.
//
// Documents are processed strictly sequentially, and pages within a document
// strictly in ascending index order. Nothing below a missing rendering
// engine aborts the batch: per-document and per-page failures are converted
// to events and the remaining work continues.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/avelis/pdfraster/internal/pagerange"
	"github.com/avelis/pdfraster/internal/raster"
	"github.com/avelis/pdfraster/internal/render"
	"github.com/avelis/pdfraster/pkg/types"
)

// Reporter receives progress and status events. The pipeline calls it from a
// single goroutine, in processing order; the terminal status event for a
// document is always the last event emitted for that document.
type Reporter interface {
	Progress(e types.ProgressEvent)
	FileStatus(e types.FileStatusEvent)
}

// CompletionMessage is returned by Run after every document has been
// attempted.
const CompletionMessage = "Batch processing complete"

// Run converts every document in the request, emitting events to rep. It
// returns an error only for batch-fatal conditions (no rendering engine);
// per-document and per-page failures surface exclusively through events.
func Run(eng render.Engine, req types.ConversionRequest, rep Reporter) (string, error) {
	if eng == nil {
		return "", errors.New("rendering engine unavailable")
	}

	for _, path := range req.InputPaths {
		processDocument(eng, req, path, rep)
	}
	return CompletionMessage, nil
}

// processDocument runs one document through the Processing -> Success/Error
// state machine, emitting exactly one terminal status event.
func processDocument(eng render.Engine, req types.ConversionRequest, path string, rep Reporter) {
	filename := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	rep.FileStatus(types.FileStatusEvent{
		Filename: filename,
		Status:   types.StatusProcessing,
	})

	doc, err := eng.Open(path)
	if err != nil {
		fail(rep, filename, fmt.Sprintf("load error: %v", err))
		return
	}
	defer doc.Close()

	selection := pagerange.Parse(req.PageRange, doc.PageCount())
	total := len(selection)
	if total == 0 {
		fail(rep, filename, "no valid pages selected in range")
		return
	}

	var buffered []image.Image
	var lastOutput string

	for i, pageIndex := range selection {
		rep.Progress(types.ProgressEvent{
			Filename: filename,
			Current:  i + 1,
			Total:    total,
		})

		img, err := render.RenderPage(doc, pageIndex, req.Scale)
		if err != nil {
			fail(rep, filename, fmt.Sprintf("render error: %v", err))
			continue
		}

		if req.Merge {
			buffered = append(buffered, img)
			continue
		}

		out := outputPath(req, filename, pageSuffix(total, pageIndex))
		if err := raster.Encode(img, req.Format, req.Quality, out); err != nil {
			fail(rep, filename, fmt.Sprintf("save error: %v", err))
			continue
		}
		lastOutput = out
	}

	if req.Merge {
		finishMerged(req, filename, buffered, rep)
		return
	}

	if lastOutput == "" {
		fail(rep, filename, "no pages could be converted")
		return
	}
	succeed(rep, filename, lastOutput)
}

// finishMerged composes the accumulated pages, writes the merged file, and
// emits the document's terminal status. A stack whose computed canvas has a
// zero dimension is skipped without being treated as a failure.
func finishMerged(req types.ConversionRequest, filename string, buffered []image.Image, rep Reporter) {
	if len(buffered) == 0 {
		fail(rep, filename, "no pages could be rendered for merging")
		return
	}

	merged, err := raster.Compose(buffered)
	if err != nil {
		fail(rep, filename, fmt.Sprintf("merge error: %v", err))
		return
	}
	if merged.Bounds().Empty() {
		succeed(rep, filename, "")
		return
	}

	out := outputPath(req, filename, "_merged")
	if err := raster.Encode(merged, req.Format, req.Quality, out); err != nil {
		fail(rep, filename, fmt.Sprintf("merge save error: %v", err))
		return
	}
	succeed(rep, filename, out)
}

// pageSuffix names per-page outputs. A single selected page gets no suffix;
// multiple pages are suffixed with the page's 1-based document index.
func pageSuffix(total, pageIndex int) string {
	if total > 1 {
		return fmt.Sprintf("_page_%d", pageIndex+1)
	}
	return ""
}

func outputPath(req types.ConversionRequest, filename, suffix string) string {
	return filepath.Join(req.OutputDir, fmt.Sprintf("%s%s.%s", filename, suffix, req.Format.Ext()))
}

func succeed(rep Reporter, filename, outputPath string) {
	rep.FileStatus(types.FileStatusEvent{
		Filename:   filename,
		Status:     types.StatusSuccess,
		OutputPath: outputPath,
	})
}

// fail emits an error-status event. Used both for a document's terminal
// error and for recoverable per-page failures; whether the event is terminal
// is decided by the control flow, not the event shape.
func fail(rep Reporter, filename, msg string) {
	rep.FileStatus(types.FileStatusEvent{
		Filename: filename,
		Status:   types.StatusError,
		Error:    msg,
	})
}
