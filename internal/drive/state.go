package drive

import "github.com/vovakirdan/textdrive/internal/course"

// Phase is the state machine position of a session.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// State is an immutable snapshot of a session. Advance returns a new State
// and never modifies one that has already been handed out.
type State struct {
	playerColumn      int
	playerRow         int
	distance          int
	patternCursor     int
	scrollAccumulator int
	inputCooldown     int
	rows              []course.Row
	over              bool
}

// PlayerColumn returns the lane the player occupies.
func (s State) PlayerColumn() int { return s.playerColumn }

// PlayerRow returns the fixed row the player sits on.
func (s State) PlayerRow() int { return s.playerRow }

// Distance returns the number of rows scrolled so far.
func (s State) Distance() int { return s.distance }

// PatternCursor returns the generator cursor the next scroll continues from.
func (s State) PatternCursor() int { return s.patternCursor }

// ScrollAccumulator returns the ticks elapsed since the last scroll event.
func (s State) ScrollAccumulator() int { return s.scrollAccumulator }

// InputCooldown returns the ticks left before another lateral move is accepted.
func (s State) InputCooldown() int { return s.inputCooldown }

// IsOver reports whether the session has ended.
func (s State) IsOver() bool { return s.over }

// Phase returns the state machine position.
func (s State) Phase() Phase {
	if s.over {
		return PhaseGameOver
	}
	return PhaseRunning
}

// Rows returns the visible course, newest row first. The returned slice is a
// copy; the rows themselves must be treated as read-only.
func (s State) Rows() []course.Row {
	out := make([]course.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// RowCount returns the number of visible rows without copying.
func (s State) RowCount() int { return len(s.rows) }

// Row returns the visible row at index i, or nil when i is out of range.
func (s State) Row(i int) course.Row {
	if i < 0 || i >= len(s.rows) {
		return nil
	}
	return s.rows[i]
}

// Collides reports whether the cell at (col, row) is a wall. Positions
// outside the course, including rows that have not scrolled in yet, never
// collide.
func Collides(col, row int, rows []course.Row) bool {
	if row < 0 || row >= len(rows) {
		return false
	}
	r := rows[row]
	if col < 0 || col >= len(r) {
		return false
	}
	return r[col] == course.Wall
}
