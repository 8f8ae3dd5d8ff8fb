package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/textdrive/internal/course"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List course generation policies",
	Long:  `Shows the course generation policies that can be passed to --policy.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	policies := course.List()
	out := cmd.OutOrStdout()

	if len(policies) == 0 {
		fmt.Fprintln(out, "No policies available.")
		return
	}

	fmt.Fprintln(out, "Available policies:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range policies {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, p := range policies {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'textdrive play --policy <id>' to drive a course.")
}
