// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/avelis/pdfraster/pkg/types"
)

// JobFile is the on-disk representation of a conversion request. A batch can
// be described once in YAML and replayed without retyping flags.
type JobFile struct {
	Inputs    []string `yaml:"inputs"`
	OutputDir string   `yaml:"output_dir"`
	Format    string   `yaml:"format"`
	Scale     float64  `yaml:"scale"`
	Pages     string   `yaml:"pages,omitempty"`
	Merge     bool     `yaml:"merge"`
	Quality   int      `yaml:"quality"`
}

// ReadJobFile loads a job file from disk.
func ReadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	return &jf, nil
}

// WriteJobFile saves a conversion request as a YAML job file.
func WriteJobFile(path string, req types.ConversionRequest) error {
	jf := JobFile{
		Inputs:    req.InputPaths,
		OutputDir: req.OutputDir,
		Format:    string(req.Format),
		Scale:     req.Scale,
		Pages:     req.PageRange,
		Merge:     req.Merge,
		Quality:   req.Quality,
	}
	data, err := yaml.Marshal(&jf)
	if err != nil {
		return fmt.Errorf("marshaling job file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ToRequest validates the job file and converts it into a ConversionRequest.
func (j *JobFile) ToRequest() (types.ConversionRequest, error) {
	var req types.ConversionRequest
	if len(j.Inputs) == 0 {
		return req, fmt.Errorf("job file lists no inputs")
	}
	if j.OutputDir == "" {
		return req, fmt.Errorf("job file has no output_dir")
	}
	if j.Scale <= 0 {
		return req, fmt.Errorf("job file scale %g is not positive", j.Scale)
	}
	req = types.ConversionRequest{
		InputPaths: j.Inputs,
		OutputDir:  j.OutputDir,
		Format:     types.ParseFormat(j.Format),
		Scale:      j.Scale,
		PageRange:  j.Pages,
		Merge:      j.Merge,
		Quality:    j.Quality,
	}
	return req, nil
}
