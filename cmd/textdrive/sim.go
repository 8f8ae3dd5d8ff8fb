package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/textdrive/internal/autopilot"
	"github.com/vovakirdan/textdrive/internal/core"
	"github.com/vovakirdan/textdrive/internal/drive"
)

var (
	flagTicks int
	flagRuns  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless",
	Long: `Drives one or more sessions with the autopilot and prints how far each
got. Run i uses seed --seed+i, so results are reproducible. Logs go to
stderr unless --log-file is set.

Examples:
  textdrive sim
  textdrive sim --runs 20 --ticks 60000 --seed 1
  textdrive sim --policy path --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simCmd.Flags().StringVar(&flagPolicy, "policy", "", "Course policy (see 'textdrive list')")
	simCmd.Flags().BoolVar(&flagPrefill, "prefill", false, "Fill the screen with course before the first tick")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagRuns <= 0 || flagTicks <= 0 {
		return errors.New("--runs and --ticks must be positive")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := drive.NewGame(gameOptions(cmd, logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-20s  %8s  %8s  %s\n", "Run", "Seed", "Ticks", "Distance", "Result")

	var total, best, crashes int
	for i := range flagRuns {
		seed := base + int64(i)
		if err := game.Reset(core.RuntimeConfig{TickRate: tickRate(game.Settings().Timing.TickRate), Seed: seed}); err != nil {
			return err
		}

		res, err := autopilot.Run(ctx, game.Engine(), flagTicks)
		if errors.Is(err, context.Canceled) {
			logger.Warn("simulation interrupted", "run", i, "ticks", res.Ticks)
			return nil
		}
		if err != nil {
			return err
		}

		outcome := "survived"
		if res.Crashed {
			outcome = "crashed"
			crashes++
		}
		logger.Debug("run finished", "run", i, "seed", seed, "distance", res.Distance, "crashed", res.Crashed)
		fmt.Fprintf(out, "  %-4d  %-20d  %8d  %8d  %s\n", i, seed, res.Ticks, res.Distance, outcome)

		total += res.Distance
		best = max(best, res.Distance)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Crashes: %d  Mean distance: %.1f  Best: %d\n",
		flagRuns, crashes, float64(total)/float64(flagRuns), best)
	return nil
}
