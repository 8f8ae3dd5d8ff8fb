package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/textdrive/internal/config"
	"github.com/vovakirdan/textdrive/internal/course"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the pattern templates and their gaps",
	Long: `Parses the configured pattern templates at the configured width and
shows the open windows of each one. Warns when a template has no gap or when
adjacent templates shift further than the player can steer in one scroll.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadDrive(flagConfig)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	reports := course.Describe(cfg.Course.Patterns, cfg.Course.Cols)
	fmt.Fprintf(out, "%d templates, %d lanes:\n\n", len(reports), cfg.Course.Cols)

	for _, r := range reports {
		windows := make([]string, 0, len(r.Windows))
		for _, w := range r.Windows {
			windows = append(windows, fmt.Sprintf("%d-%d", w.Start, w.End-1))
		}
		gaps := strings.Join(windows, ", ")
		if !r.Passable {
			gaps = "none (impassable)"
		}
		fmt.Fprintf(out, "  %2d  |%s|  open: %s\n", r.Index, r.Row, gaps)
	}
	fmt.Fprintln(out)

	shift := course.MaxShift(reports)
	steer := stepsPerScroll(cfg.Timing.ScrollPeriod, cfg.Timing.InputCooldown)
	switch {
	case shift < 0:
		fmt.Fprintln(out, "Warning: at least one template has no open lane.")
	case shift > steer:
		fmt.Fprintf(out, "Warning: templates shift up to %d lanes, the player can steer %d per scroll.\n", shift, steer)
	default:
		fmt.Fprintf(out, "Largest shift: %d lane(s), steerable: %d per scroll.\n", shift, steer)
	}
	return nil
}

// stepsPerScroll returns how many lanes the player can move between scrolls.
func stepsPerScroll(scrollPeriod, cooldown int) int {
	if scrollPeriod <= 0 {
		return 0
	}
	return (scrollPeriod + cooldown) / (cooldown + 1)
}
