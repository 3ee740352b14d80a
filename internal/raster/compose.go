// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"errors"
	"image"
	"image/draw"
)

// ErrNoImages is returned by Compose for an empty input sequence. Callers
// are expected to check non-emptiness first.
var ErrNoImages = errors.New("no images to compose")

// Compose stacks the given pixel buffers vertically, in order, onto a
// transparent canvas. The canvas is as wide as the widest input and as tall
// as the sum of all input heights; each buffer is placed left-aligned at the
// cumulative height of its predecessors. Buffers narrower than the canvas
// leave the remainder of their row transparent.
func Compose(images []image.Image) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	width, height := 0, 0
	for _, img := range images {
		b := img.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		height += b.Dy()
	}

	// The zero-valued RGBA buffer is already fully transparent.
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	y := 0
	for _, img := range images {
		b := img.Bounds()
		dst := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(canvas, dst, img, b.Min, draw.Src)
		y += b.Dy()
	}
	return canvas, nil
}
