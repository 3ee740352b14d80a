// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avelis/pdfraster/internal/pipeline"
	"github.com/avelis/pdfraster/internal/render"
	"github.com/avelis/pdfraster/internal/report"
	"github.com/avelis/pdfraster/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs...]",
	Short: "Render PDF pages to image files",
	Long: `Convert renders the selected pages of each input PDF to PNG or JPEG
files in the output directory. With --merge, all selected pages of a document
are stacked vertically into a single image.

The batch can also be described in a YAML job file and replayed with --job.`,
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringP("out", "o", "", "output directory (default from config, else \".\")")
	f.String("format", "", "output format: png or jpeg")
	f.Float64("scale", 0, "render scale in pixels per document point")
	f.String("pages", "", "page range expression, e.g. \"1-3,7\" (default all pages)")
	f.Bool("merge", false, "stack all selected pages into one vertical image per document")
	f.Int("quality", 0, "jpeg quality, 0-100")
	f.String("job", "", "YAML job file describing the whole batch")
	f.String("save-job", "", "write the resolved batch as a YAML job file for later replay")
	f.Bool("plain", false, "line-oriented status output instead of progress bars")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save-job"); savePath != "" {
		if err := pipeline.WriteJobFile(savePath, req); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", req.OutputDir, err)
	}

	eng, err := render.NewFitzEngine(types.EngineConfig{
		FontDirs: viper.GetStringSlice("font_dirs"),
	})
	if err != nil {
		return fmt.Errorf("rendering engine unavailable: %w", err)
	}

	rep := newReporter(cmd)
	msg, err := pipeline.Run(eng, req, rep)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), msg)
	fmt.Fprintln(cmd.OutOrStdout(), rep.Summary())
	return nil
}

// buildRequest assembles the conversion request from a job file when --job
// is given, or from arguments, flags, and config defaults otherwise.
func buildRequest(cmd *cobra.Command, args []string) (types.ConversionRequest, error) {
	jobPath, _ := cmd.Flags().GetString("job")
	if jobPath != "" {
		if len(args) > 0 {
			return types.ConversionRequest{}, fmt.Errorf("--job and input arguments are mutually exclusive")
		}
		jf, err := pipeline.ReadJobFile(jobPath)
		if err != nil {
			return types.ConversionRequest{}, err
		}
		return jf.ToRequest()
	}

	if len(args) == 0 {
		return types.ConversionRequest{}, fmt.Errorf("no input files given")
	}

	req, err := requestFromFlags(cmd)
	if err != nil {
		return req, err
	}
	req.InputPaths = args
	return req, nil
}

// requestFromFlags fills everything but the input paths. Unset flags fall
// back to viper-resolved config values.
func requestFromFlags(cmd *cobra.Command) (types.ConversionRequest, error) {
	f := cmd.Flags()

	outDir, _ := f.GetString("out")
	if outDir == "" {
		outDir = viper.GetString("output_dir")
	}
	format, _ := f.GetString("format")
	if format == "" {
		format = viper.GetString("format")
	}
	scale, _ := f.GetFloat64("scale")
	if scale == 0 {
		scale = viper.GetFloat64("scale")
	}
	quality, _ := f.GetInt("quality")
	if !f.Changed("quality") {
		quality = viper.GetInt("quality")
	}
	pages, _ := f.GetString("pages")
	merge, _ := f.GetBool("merge")

	if scale <= 0 {
		return types.ConversionRequest{}, fmt.Errorf("scale %g is not positive", scale)
	}

	return types.ConversionRequest{
		OutputDir: outDir,
		Format:    types.ParseFormat(format),
		Scale:     scale,
		PageRange: pages,
		Merge:     merge,
		Quality:   quality,
	}, nil
}

// reporter is the slice of the report types the convert command needs.
type reporter interface {
	pipeline.Reporter
	Summary() string
}

// newReporter picks progress bars on interactive terminals, plain lines
// otherwise or when --plain is set.
func newReporter(cmd *cobra.Command) reporter {
	plain, _ := cmd.Flags().GetBool("plain")
	if !plain && isatty.IsTerminal(os.Stderr.Fd()) {
		return report.NewProgressBarReporter(os.Stderr)
	}
	return report.NewWriterReporter(cmd.ErrOrStderr())
}
