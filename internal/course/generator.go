package course

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidCols is returned when a generator is built with no lanes.
	ErrInvalidCols = errors.New("course: cols must be positive")

	// ErrNoPatterns is returned when the pattern-cycle policy has no templates.
	ErrNoPatterns = errors.New("course: pattern list is empty")

	// ErrNilRNG is returned when a generator is built without a random source.
	ErrNilRNG = errors.New("course: nil random source")
)

// Generator produces course rows one scroll event at a time.
type Generator interface {
	// Next returns a fresh row and the cursor to pass to the following call.
	Next(cursor int) (Row, int)

	// Safe returns the row placed under a player at col when a course is
	// prefilled. col must be open in it.
	Safe(col int) Row

	// Cols returns the width of every row this generator produces.
	Cols() int
}

// DefaultPatterns are the classic curated templates. Neighbours
// differ only by a one-column shift of the open segment.
var DefaultPatterns = []string{
	"■■■   ■■■",
	"■■■■   ■■",
	"■■■■■   ■",
	"■■■■■■   ",
	"■■■■■   ■",
	"■■■■   ■■",
	"■■■   ■■■",
	"■■   ■■■■",
	"■   ■■■■■",
	"   ■■■■■■",
	"■   ■■■■■",
	"■■   ■■■■",
}

// PatternCycle walks a cyclic list of templates, moving at most one step per
// call so the open segment drifts smoothly.
type PatternCycle struct {
	cols     int
	patterns []Row
	rng      *rand.Rand
}

// NewPatternCycle parses the templates to cols-wide rows.
func NewPatternCycle(cols int, templates []string, rng *rand.Rand) (*PatternCycle, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCols, cols)
	}
	if len(templates) == 0 {
		return nil, ErrNoPatterns
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	patterns := make([]Row, len(templates))
	for i, tpl := range templates {
		patterns[i] = ParseRow(tpl, cols)
	}

	return &PatternCycle{
		cols:     cols,
		patterns: patterns,
		rng:      rng,
	}, nil
}

// Next moves the cursor by -1, 0 or +1 and returns the template there.
func (p *PatternCycle) Next(cursor int) (Row, int) {
	step := p.rng.Intn(3) - 1
	n := len(p.patterns)
	next := ((cursor+step)%n + n) % n
	return p.patterns[next].Clone(), next
}

// Safe returns the safe row around col.
func (p *PatternCycle) Safe(col int) Row {
	return SafeRow(p.cols, col)
}

// Cols returns the row width.
func (p *PatternCycle) Cols() int {
	return p.cols
}

// Len returns the number of templates, which bounds the cursor.
func (p *PatternCycle) Len() int {
	return len(p.patterns)
}

// Pattern returns a copy of the template at index i.
func (p *PatternCycle) Pattern(i int) Row {
	return p.patterns[i].Clone()
}

// Path window widths are drawn from [1, maxPathWidth].
const maxPathWidth = 3

// PathWindow builds each row independently: a random open window of width
// 1 to 3 at a random in-bounds start. Consecutive windows may jump.
type PathWindow struct {
	cols int
	rng  *rand.Rand
}

// NewPathWindow creates a path-window generator.
func NewPathWindow(cols int, rng *rand.Rand) (*PathWindow, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCols, cols)
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	return &PathWindow{cols: cols, rng: rng}, nil
}

// Next ignores the incoming cursor and returns the window start as the new one.
func (p *PathWindow) Next(_ int) (Row, int) {
	width := 1 + p.rng.Intn(min(maxPathWidth, p.cols))
	start := p.rng.Intn(p.cols - width + 1)
	return windowRow(p.cols, start, width), start
}

// Safe returns the safe row around col.
func (p *PathWindow) Safe(col int) Row {
	return SafeRow(p.cols, col)
}

// Cols returns the row width.
func (p *PathWindow) Cols() int {
	return p.cols
}
