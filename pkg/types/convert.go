// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the conversion pipeline:
// batch requests, output formats, and the progress/status events consumed
// by the presentation layer.
package types

import "strings"

// Format identifies the output raster format.
type Format string

const (
	// FormatPNG is the lossless output format.
	FormatPNG Format = "png"

	// FormatJPEG is the lossy output format. Quality applies only here.
	FormatJPEG Format = "jpeg"
)

// ParseFormat maps a user-supplied format string to a Format. Matching is
// case-insensitive; anything that is not "png" selects the lossy format.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "png") {
		return FormatPNG
	}
	return FormatJPEG
}

// Ext returns the file extension (without dot) used for output files.
// The lossy format always writes its standard 3-letter extension.
func (f Format) Ext() string {
	if f == FormatPNG {
		return "png"
	}
	return "jpg"
}

// Lossy reports whether the format takes a quality parameter.
func (f Format) Lossy() bool {
	return f != FormatPNG
}

// Status is the processing state of a single input document.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Terminal reports whether the status ends a document's lifecycle.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// ConversionRequest describes one batch invocation. It is immutable for the
// duration of the batch and is not persisted anywhere.
type ConversionRequest struct {
	// InputPaths is the ordered list of documents to convert.
	InputPaths []string

	// OutputDir is the directory output files are written into.
	OutputDir string

	// Format selects the output raster format.
	Format Format

	// Scale is the render scale in pixels per document unit. Must be positive.
	Scale float64

	// PageRange is the user-supplied range expression, e.g. "1-3,7".
	// Empty selects all pages.
	PageRange string

	// Merge stacks all selected pages of a document vertically into a
	// single output image instead of one file per page.
	Merge bool

	// Quality is the lossy-format quality, 0-100. It is handed to the
	// codec unmodified.
	Quality int
}

// ProgressEvent reports per-page progress within one document. Current is
// 1-based; Total is the number of selected pages.
type ProgressEvent struct {
	Filename string `json:"filename"`
	Current  int    `json:"current"`
	Total    int    `json:"total"`
}

// FileStatusEvent reports a document's status. Exactly one terminal event
// (success or error) is emitted per input document; error-status events may
// also appear mid-processing for recoverable per-page failures.
type FileStatusEvent struct {
	Filename   string `json:"filename"`
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}
