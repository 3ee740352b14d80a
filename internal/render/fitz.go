// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"image"
	"os"

	"github.com/gen2brain/go-fitz"

	"github.com/avelis/pdfraster/pkg/types"
)

// fontconfigEnv is the environment variable MuPDF's text shaping reads to
// locate system fonts.
const fontconfigEnv = "FONTCONFIG_PATH"

// FitzEngine renders documents with MuPDF. Construction applies the font
// configuration once; the engine itself is stateless and safe to share
// across the sequential documents of a batch.
type FitzEngine struct {
	// FontDir is the font configuration directory that was applied, or
	// empty when no candidate existed.
	FontDir string
}

// NewFitzEngine constructs the MuPDF-backed engine. The first existing
// directory from cfg.FontDirs is exported as FONTCONFIG_PATH for the
// lifetime of the process; candidates that do not exist are skipped.
func NewFitzEngine(cfg types.EngineConfig) (*FitzEngine, error) {
	dirs := cfg.FontDirs
	if len(dirs) == 0 {
		dirs = []string{"/etc/fonts"}
	}

	eng := &FitzEngine{}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := os.Setenv(fontconfigEnv, dir); err != nil {
			return nil, fmt.Errorf("setting %s: %w", fontconfigEnv, err)
		}
		eng.FontDir = dir
		break
	}
	return eng, nil
}

// Open loads the document at path with MuPDF.
func (e *FitzEngine) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &fitzDocument{doc: doc}, nil
}

// fitzDocument adapts *fitz.Document to the Document interface. go-fitz
// reports page bounds in points (1/72 inch), which serve as the document
// units for scale computation.
type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) PageCount() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageSize(index int) (float64, float64, error) {
	bound, err := d.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(bound.Dx()), float64(bound.Dy()), nil
}

// RenderPage rasterizes via ImageDPI. go-fitz takes a DPI rather than pixel
// dimensions, so the target width is translated back into a DPI relative to
// the page's 72-DPI bounds; the produced buffer may differ from the target
// by a pixel of rounding.
func (d *fitzDocument) RenderPage(index int, width, height int) (image.Image, error) {
	w, _, err := d.PageSize(index)
	if err != nil {
		return nil, err
	}
	if w <= 0 {
		return nil, fmt.Errorf("page %d has zero width", index+1)
	}
	dpi := 72.0 * float64(width) / w
	return d.doc.ImageDPI(index, dpi)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
