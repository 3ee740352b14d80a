// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render wraps the rasterization engine behind a small capability
// interface and implements the page-to-pixel-buffer scale math. The
// production engine is MuPDF via go-fitz; the pipeline and its tests only
// ever see the Engine and Document interfaces.
package render

import (
	"fmt"
	"image"
	"math"
)

// Engine opens documents for rendering. An Engine is acquired once per batch
// invocation and shared read-only across all documents in the batch.
type Engine interface {
	// Open loads the document at path. The caller owns the returned
	// Document and must Close it.
	Open(path string) (Document, error)
}

// Document is one loaded paginated input. Page indices are zero-based.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageSize returns a page's width and height in document units.
	PageSize(index int) (width, height float64, err error)

	// RenderPage rasterizes a page into a pixel buffer of approximately
	// the given target dimensions.
	RenderPage(index int, width, height int) (image.Image, error)

	Close() error
}

// RenderPage rasterizes one page at the given scale (pixels per document
// unit). Target dimensions are round(size * scale); a non-positive computed
// dimension is rejected before the engine is invoked.
func RenderPage(doc Document, index int, scale float64) (image.Image, error) {
	w, h, err := doc.PageSize(index)
	if err != nil {
		return nil, fmt.Errorf("page %d size: %w", index+1, err)
	}

	pw := int(math.Round(w * scale))
	ph := int(math.Round(h * scale))
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("page %d: computed render size %dx%d is not positive (scale %g)", index+1, pw, ph, scale)
	}

	img, err := doc.RenderPage(index, pw, ph)
	if err != nil {
		return nil, fmt.Errorf("rendering page %d: %w", index+1, err)
	}
	return img, nil
}
