// Package autopilot drives a session without a player. It is used by the
// sim command and by tests that need long runs.
package autopilot

import (
	"context"

	"github.com/vovakirdan/textdrive/internal/core"
	"github.com/vovakirdan/textdrive/internal/course"
	"github.com/vovakirdan/textdrive/internal/drive"
)

// Target returns the lane the player should head for: the nearest lane that
// is open in the row about to scroll onto the player and reachable along
// the player's current row. Ties go to the left. When nothing is reachable
// the current lane is returned.
func Target(s drive.State) int {
	col := s.PlayerColumn()
	ahead := s.Row(s.PlayerRow() - 1)
	if ahead == nil || ahead.At(col) == course.Open {
		return col
	}
	current := s.Row(s.PlayerRow())

	best, bestDist := col, len(ahead)
	for c := range ahead {
		if ahead.At(c) != course.Open || c == col {
			continue
		}
		// Scanning left to right with a strict comparison keeps ties left.
		if d := core.Abs(c - col); d < bestDist && reachable(current, col, c) {
			best, bestDist = c, d
		}
	}
	return best
}

// reachable reports whether every lane from col (exclusive) to target
// (inclusive) is open in row. A nil row has not scrolled in and is open.
func reachable(row course.Row, col, target int) bool {
	step := 1
	if target < col {
		step = -1
	}
	for c := col + step; ; c += step {
		if row.At(c) == course.Wall {
			return false
		}
		if c == target {
			return true
		}
	}
}

// Decide returns the input frame for the next tick.
func Decide(s drive.State) core.InputFrame {
	frame := core.NewInputFrame()
	if s.IsOver() || s.InputCooldown() > 0 {
		return frame
	}

	switch target := Target(s); {
	case target < s.PlayerColumn():
		frame.Set(core.ActionLeft)
	case target > s.PlayerColumn():
		frame.Set(core.ActionRight)
	}
	return frame
}

// Result summarizes one autopilot run.
type Result struct {
	Ticks    int
	Distance int
	Crashed  bool
	Final    drive.State
}

// Run steps a fresh session until it crashes, maxTicks have elapsed or ctx
// is cancelled. A cancelled run returns the partial result with ctx.Err().
func Run(ctx context.Context, e *drive.Engine, maxTicks int) (Result, error) {
	s := e.NewState()
	ticks := 0
	for ; ticks < maxTicks && !s.IsOver(); ticks++ {
		if err := ctx.Err(); err != nil {
			return result(s, ticks), err
		}
		s = e.Advance(s, Decide(s))
	}
	return result(s, ticks), nil
}

func result(s drive.State, ticks int) Result {
	return Result{
		Ticks:    ticks,
		Distance: s.Distance(),
		Crashed:  s.IsOver(),
		Final:    s,
	}
}
