// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfraster CLI, a batch
// PDF-to-image converter with page selection and vertical merging.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfraster CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfraster",
	Short: "Batch PDF-to-image conversion",
	Long: `pdfraster renders PDF pages to PNG or JPEG files. A batch takes any
number of input documents, an optional page-range expression ("1-3,7"), a
render scale, and optionally merges the selected pages of each document into
a single vertically stacked image.

One bad document or page never aborts the batch: failures are reported per
file and the remaining work continues.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfraster.yaml or ~/.config/pdfraster/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfraster")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfraster"))
		}
	}

	viper.SetEnvPrefix("PDFRASTER")
	viper.AutomaticEnv()

	viper.SetDefault("output_dir", ".")
	viper.SetDefault("format", "png")
	viper.SetDefault("scale", 2.0)
	viper.SetDefault("quality", 85)
	viper.SetDefault("font_dirs", []string{"/etc/fonts"})

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
