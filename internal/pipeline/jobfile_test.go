// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avelis/pdfraster/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	req := types.ConversionRequest{
		InputPaths: []string{"a.pdf", "b.pdf"},
		OutputDir:  "out",
		Format:     types.FormatJPEG,
		Scale:      1.5,
		PageRange:  "1-3,7",
		Merge:      true,
		Quality:    72,
	}

	require.NoError(t, WriteJobFile(path, req))

	jf, err := ReadJobFile(path)
	require.NoError(t, err)
	got, err := jf.ToRequest()
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestReadJobFile_ParsesHandWrittenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	doc := `inputs:
  - scans/invoice.pdf
output_dir: rendered
format: PNG
scale: 2
pages: "2-4"
quality: 90
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	jf, err := ReadJobFile(path)
	require.NoError(t, err)
	req, err := jf.ToRequest()
	require.NoError(t, err)

	assert.Equal(t, []string{"scans/invoice.pdf"}, req.InputPaths)
	assert.Equal(t, types.FormatPNG, req.Format, "format matching is case-insensitive")
	assert.Equal(t, "2-4", req.PageRange)
	assert.False(t, req.Merge)
}

func TestJobFile_ToRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		jf   JobFile
	}{
		{"no inputs", JobFile{OutputDir: "out", Scale: 1}},
		{"no output dir", JobFile{Inputs: []string{"a.pdf"}, Scale: 1}},
		{"zero scale", JobFile{Inputs: []string{"a.pdf"}, OutputDir: "out"}},
		{"negative scale", JobFile{Inputs: []string{"a.pdf"}, OutputDir: "out", Scale: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.jf.ToRequest()
			assert.Error(t, err)
		})
	}
}

func TestReadJobFile_Missing(t *testing.T) {
	_, err := ReadJobFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
