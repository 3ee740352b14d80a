package types

// ConvertConfig holds the defaults applied to convert invocations when the
// corresponding flag is not set. Populated from the config file and
// PDFRASTER_* environment variables.
type ConvertConfig struct {
	// OutputDir is the default output directory (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format is the default output format: png or jpeg (default "png").
	Format string `json:"format" yaml:"format"`

	// Scale is the default render scale in pixels per document unit
	// (default 2.0, i.e. 144 DPI for PDF points).
	Scale float64 `json:"scale" yaml:"scale"`

	// Quality is the default lossy-format quality (default 85).
	Quality int `json:"quality" yaml:"quality"`
}

// EngineConfig holds settings for the rendering engine established once per
// batch invocation.
type EngineConfig struct {
	// FontDirs is an ordered list of candidate font configuration
	// directories. The first one that exists is applied when the engine
	// is constructed (default ["/etc/fonts"]).
	FontDirs []string `json:"font_dirs" yaml:"font_dirs"`
}
