// textdrive is a lane-based endless runner for the terminal.
//
// Usage:
//
//	textdrive play              - Drive until you hit a wall
//	textdrive list              - List course generation policies
//	textdrive patterns          - Show the pattern templates and their gaps
//	textdrive sim               - Run the autopilot headless
//	textdrive config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible courses
//	--config <path>     - Use a custom YAML config
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textdrive",
	Short: "TextDrive - dodge the walls in your terminal",
	Long: `TextDrive is a lane-based endless runner. The course scrolls down one
row at a time; steer left and right to stay in the gap.

Available commands:
  play      - Start driving
  list      - Show course generation policies
  patterns  - Inspect the pattern templates
  sim       - Run the autopilot without a terminal UI
  config    - Print the effective configuration

Examples:
  textdrive play
  textdrive play --policy path --prefill
  textdrive sim --runs 10 --seed 42
  textdrive config > ~/.textdrive/configs/textdrive.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "textdrive",
		Level:           level,
	})
	return logger, closer, nil
}
