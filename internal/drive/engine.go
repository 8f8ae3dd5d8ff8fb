// Package drive implements the TextDrive lane runner: the per-tick state
// machine in engine.go and the platform adapter in game.go.
package drive

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/textdrive/internal/core"
	"github.com/vovakirdan/textdrive/internal/course"
)

// ErrInvalidConfig is wrapped by every configuration error New returns.
var ErrInvalidConfig = errors.New("invalid drive config")

// Config holds the dimensions and timings of a session.
type Config struct {
	Cols                int  // Lanes per row
	VisibleRows         int  // Rows kept on screen
	PlayerRow           int  // Row index the player sits on
	StartColumn         int  // Starting lane, negative means Cols/2
	PrefillCourse       bool // Fill the screen before the first tick
	ScrollPeriod        int  // Ticks between scroll events
	InputCooldownPeriod int  // Ticks a lateral move blocks further moves
}

// DefaultEngineConfig returns the classic 9x15 course.
func DefaultEngineConfig() Config {
	return Config{
		Cols:                9,
		VisibleRows:         15,
		PlayerRow:           13,
		StartColumn:         -1,
		PrefillCourse:       false,
		ScrollPeriod:        10,
		InputCooldownPeriod: 5,
	}
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error
	if c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("drive: cols must be positive (got %d): %w", c.Cols, ErrInvalidConfig))
	}
	if c.VisibleRows <= 0 {
		errs = append(errs, fmt.Errorf("drive: visible rows must be positive (got %d): %w", c.VisibleRows, ErrInvalidConfig))
	}
	if c.PlayerRow < 0 || c.PlayerRow >= c.VisibleRows {
		errs = append(errs, fmt.Errorf("drive: player row %d outside [0, %d): %w", c.PlayerRow, c.VisibleRows, ErrInvalidConfig))
	}
	if c.StartColumn >= c.Cols {
		errs = append(errs, fmt.Errorf("drive: start column %d outside [0, %d): %w", c.StartColumn, c.Cols, ErrInvalidConfig))
	}
	if c.ScrollPeriod <= 0 {
		errs = append(errs, fmt.Errorf("drive: scroll period must be positive (got %d): %w", c.ScrollPeriod, ErrInvalidConfig))
	}
	if c.InputCooldownPeriod < 0 {
		errs = append(errs, fmt.Errorf("drive: input cooldown must not be negative (got %d): %w", c.InputCooldownPeriod, ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// Engine advances sessions one tick at a time. It owns the course generator
// and therefore its RNG stream; only one Advance may run at a time.
type Engine struct {
	cfg Config
	gen course.Generator
}

// New validates cfg against the generator and returns an engine.
func New(cfg Config, gen course.Generator) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("drive: nil course generator: %w", ErrInvalidConfig)
	}
	if gen.Cols() != cfg.Cols {
		return nil, fmt.Errorf("drive: generator width %d does not match cols %d: %w", gen.Cols(), cfg.Cols, ErrInvalidConfig)
	}
	return &Engine{cfg: cfg, gen: gen}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewState returns a fresh session. A prefilled course is built around the
// start lane; if the generator still walls that lane the session starts over.
func (e *Engine) NewState() State {
	col := e.cfg.StartColumn
	if col < 0 {
		col = e.cfg.Cols / 2
	}

	rows, cursor := course.Build(e.gen, e.cfg.VisibleRows, e.cfg.PlayerRow, col, e.cfg.PrefillCourse)

	return State{
		playerColumn:  col,
		playerRow:     e.cfg.PlayerRow,
		patternCursor: cursor,
		rows:          rows,
		over:          Collides(col, e.cfg.PlayerRow, rows),
	}
}

// Advance runs one tick: the input phase, then the scroll phase. A state that
// is already over is returned unchanged. A lateral move into a wall ends the
// session immediately and the scroll phase of that tick does not run.
func (e *Engine) Advance(s State, in core.InputFrame) State {
	if s.over {
		return s
	}

	next := s
	if e.applyInput(&next, in) {
		return next
	}
	e.applyScroll(&next)
	return next
}

// applyInput handles debouncing and lateral movement. It returns true when
// the move ended the session.
func (e *Engine) applyInput(s *State, in core.InputFrame) bool {
	if s.inputCooldown > 0 {
		s.inputCooldown--
		return false
	}

	dx := 0
	switch {
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	}
	if dx == 0 {
		return false
	}

	// The screen edge acts as a wall that blocks instead of crashing.
	candidate := s.playerColumn + dx
	if candidate < 0 || candidate >= e.cfg.Cols {
		return false
	}

	s.playerColumn = candidate
	s.inputCooldown = e.cfg.InputCooldownPeriod

	if Collides(candidate, s.playerRow, s.rows) {
		s.over = true
		return true
	}
	return false
}

// applyScroll adds a row every ScrollPeriod ticks and evicts the bottom one.
func (e *Engine) applyScroll(s *State) {
	s.scrollAccumulator++
	if s.scrollAccumulator < e.cfg.ScrollPeriod {
		return
	}
	s.scrollAccumulator = 0

	row, cursor := e.gen.Next(s.patternCursor)

	// Build a new slice so previously published states keep their rows.
	keep := min(len(s.rows), e.cfg.VisibleRows-1)
	rows := make([]course.Row, 0, keep+1)
	rows = append(rows, row)
	rows = append(rows, s.rows[:keep]...)

	s.rows = rows
	s.patternCursor = cursor
	s.distance++

	if Collides(s.playerColumn, s.playerRow, s.rows) {
		s.over = true
	}
}
