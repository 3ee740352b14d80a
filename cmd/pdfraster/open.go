// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/avelis/pdfraster/internal/reveal"
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Reveal a path in the system file manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reveal.Open(args[0])
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
