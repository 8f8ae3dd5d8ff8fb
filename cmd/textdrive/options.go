package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/textdrive/internal/drive"
)

// gameOptions collects the course overrides shared by play and sim.
// --prefill only overrides the config when given explicitly.
func gameOptions(cmd *cobra.Command, logger *log.Logger) drive.Options {
	opts := drive.Options{
		ConfigPath: flagConfig,
		Policy:     flagPolicy,
		Logger:     logger,
	}
	if cmd.Flags().Changed("prefill") {
		prefill := flagPrefill
		opts.Prefill = &prefill
	}
	return opts
}

// tickRate returns --fps when set, otherwise the configured rate.
func tickRate(configured int) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return configured
}
