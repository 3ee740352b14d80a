// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avelis/pdfraster/internal/pipeline"
	"github.com/avelis/pdfraster/internal/render"
	"github.com/avelis/pdfraster/internal/report"
	"github.com/avelis/pdfraster/internal/watcher"
	"github.com/avelis/pdfraster/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Convert PDFs as they appear in watched directories",
	Long: `Watch observes one or more directory trees and converts every PDF that
is created under them, using the same conversion settings as the convert
command. Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringP("out", "o", "", "output directory (default from config, else \".\")")
	f.String("format", "", "output format: png or jpeg")
	f.Float64("scale", 0, "render scale in pixels per document point")
	f.String("pages", "", "page range expression applied to every document")
	f.Bool("merge", false, "stack all selected pages into one vertical image per document")
	f.Int("quality", 0, "jpeg quality, 0-100")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	template, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(template.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", template.OutputDir, err)
	}

	eng, err := render.NewFitzEngine(types.EngineConfig{
		FontDirs: viper.GetStringSlice("font_dirs"),
	})
	if err != nil {
		return fmt.Errorf("rendering engine unavailable: %w", err)
	}

	out := cmd.ErrOrStderr()
	w, err := watcher.New(args, func(path string) {
		req := template
		req.InputPaths = []string{path}
		rep := report.NewWriterReporter(out)
		if _, err := pipeline.Run(eng, req, rep); err != nil {
			fmt.Fprintf(out, "error:   %s (%v)\n", path, err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(out, "watching %v for new PDFs\n", args)
	return w.Start(cmd.Context())
}
