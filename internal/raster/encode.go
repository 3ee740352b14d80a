// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster serializes pixel buffers to image files and stacks them
// into vertical composites.
package raster

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/avelis/pdfraster/pkg/types"
)

// Encode writes a pixel buffer to path in the given format. For the lossy
// format the quality value is handed to the codec unmodified; callers
// wanting stricter guarantees validate it beforehand.
func Encode(img image.Image, format types.Format, quality int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	var encErr error
	if format == types.FormatPNG {
		encErr = png.Encode(f, img)
	} else {
		encErr = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	}

	if closeErr := f.Close(); encErr == nil {
		encErr = closeErr
	}
	if encErr != nil {
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, encErr)
	}
	return nil
}
