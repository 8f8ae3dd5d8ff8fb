package autopilot

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/textdrive/internal/core"
	"github.com/vovakirdan/textdrive/internal/course"
	"github.com/vovakirdan/textdrive/internal/drive"
)

// scriptGen hands out a fixed sequence of rows, then open rows.
type scriptGen struct {
	rows []course.Row
	cols int
}

func (g *scriptGen) Next(cursor int) (course.Row, int) {
	if cursor < len(g.rows) {
		return g.rows[cursor], cursor + 1
	}
	return make(course.Row, g.cols), cursor + 1
}

func (g *scriptGen) Safe(col int) course.Row { return course.SafeRow(g.cols, col) }
func (g *scriptGen) Cols() int                 { return g.cols }

// stateAfter builds a running state from templates listed top-down: the
// first one sits directly above the player, the optional second one on the
// player row.
func stateAfter(t *testing.T, templates ...string) drive.State {
	t.Helper()
	gen := &scriptGen{cols: 9}
	for i := len(templates) - 1; i >= 0; i-- {
		gen.rows = append(gen.rows, course.ParseRow(templates[i], 9))
	}

	cfg := drive.Config{
		Cols:         9,
		VisibleRows:  2,
		PlayerRow:    1,
		StartColumn:  4,
		ScrollPeriod: 1,
	}
	e, err := drive.New(cfg, gen)
	if err != nil {
		t.Fatalf("drive.New() error = %v", err)
	}

	s := e.NewState()
	for range templates {
		s = e.Advance(s, core.NewInputFrame())
	}
	if s.IsOver() {
		t.Fatal("setup crashed")
	}
	return s
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name      string
		templates []string
		expected  int
	}{
		{"lane already open", []string{"■■■■   ■■"}, 4},
		{"open lanes to the right", []string{"■■■■■■  ■"}, 6},
		{"open lanes to the left", []string{"  ■■■■■■■"}, 1},
		{"tie goes left", []string{"■■■ ■ ■■■"}, 3},
		{"far tie goes left", []string{"■■ ■■■ ■■"}, 2},
		{"nearest of several", []string{" ■■■■■ ■■"}, 6},
		{"reachable through current row", []string{"■■ ■■ ■■■", "■■■■  ■■■"}, 5},
		{"blocked by current row", []string{"■■ ■■■ ■■", "■■■■  ■■■"}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := stateAfter(t, tc.templates...)
			if got := Target(s); got != tc.expected {
				t.Errorf("Target() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestTargetWithoutRowAhead(t *testing.T) {
	e, err := drive.New(drive.DefaultEngineConfig(), &scriptGen{cols: 9})
	if err != nil {
		t.Fatal(err)
	}
	s := e.NewState()
	if got := Target(s); got != s.PlayerColumn() {
		t.Errorf("Target() = %d, expected %d", got, s.PlayerColumn())
	}
}

func TestDecide(t *testing.T) {
	s := stateAfter(t, "■■■■■■  ■")
	in := Decide(s)
	if !in.Has(core.ActionRight) || in.Has(core.ActionLeft) {
		t.Errorf("Decide() = %v, expected right only", in.Actions)
	}

	s = stateAfter(t, "  ■■■■■■■")
	in = Decide(s)
	if !in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		t.Errorf("Decide() = %v, expected left only", in.Actions)
	}

	s = stateAfter(t, "■■■■   ■■")
	if !Decide(s).Empty() {
		t.Error("Decide() should stay put on an open lane")
	}
}

func TestDecideRespectsCooldown(t *testing.T) {
	gen := &scriptGen{cols: 9, rows: []course.Row{course.ParseRow("  ■■■■■■■", 9)}}
	cfg := drive.Config{Cols: 9, VisibleRows: 2, PlayerRow: 1, StartColumn: 4, ScrollPeriod: 2, InputCooldownPeriod: 3}
	e, err := drive.New(cfg, gen)
	if err != nil {
		t.Fatal(err)
	}

	s := e.Advance(e.NewState(), core.NewInputFrame())
	s = e.Advance(s, core.NewInputFrame())
	s = e.Advance(s, Decide(s))
	if s.IsOver() {
		t.Fatal("move should not crash")
	}
	if s.InputCooldown() == 0 {
		t.Fatal("move should start the cooldown")
	}
	if !Decide(s).Empty() {
		t.Error("Decide() should not press keys during the cooldown")
	}
}

func newPatternEngine(t *testing.T, seed int64, prefill bool) *drive.Engine {
	t.Helper()
	gen, err := course.Create(course.PolicyPattern, course.Options{
		Cols: 9,
		RNG:  rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		t.Fatal(err)
	}
	cfg := drive.DefaultEngineConfig()
	cfg.PrefillCourse = prefill
	e, err := drive.New(cfg, gen)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestRunSurvivesPatternCourse(t *testing.T) {
	for _, prefill := range []bool{false, true} {
		for seed := int64(1); seed <= 5; seed++ {
			res, err := Run(context.Background(), newPatternEngine(t, seed, prefill), 5000)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if res.Crashed {
				t.Errorf("seed %d prefill %v: crashed at distance %d", seed, prefill, res.Distance)
			}
			if res.Ticks != 5000 || res.Distance != 500 {
				t.Errorf("seed %d prefill %v: ticks=%d distance=%d, expected 5000/500", seed, prefill, res.Ticks, res.Distance)
			}
		}
	}
}

func TestRunBeatsIdle(t *testing.T) {
	e := newPatternEngine(t, 3, false)
	s := e.NewState()
	for i := 0; i < 5000 && !s.IsOver(); i++ {
		s = e.Advance(s, core.NewInputFrame())
	}
	if !s.IsOver() {
		t.Skip("idle run happened to survive")
	}

	res, err := Run(context.Background(), newPatternEngine(t, 3, false), 5000)
	if err != nil {
		t.Fatal(err)
	}
	if res.Distance <= s.Distance() {
		t.Errorf("autopilot distance %d, idle distance %d", res.Distance, s.Distance())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, newPatternEngine(t, 1, false), 100)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if res.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", res.Ticks)
	}
}
