// Package course generates the rows of the scrolling course.
// Generators are pure apart from the RNG stream they own; they never look at
// the player or the game state.
package course

import (
	"strings"
)

// Cell is one lane position of a row.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// Glyphs used by templates and by Row.String.
const (
	WallGlyph    = '■'
	AltWallGlyph = '#'
	OpenGlyph    = ' '
)

// Row is one lane-width slice of the course. Rows handed out by generators
// are never modified afterwards, so states may share them.
type Row []Cell

// ParseRow converts a template string into a row of exactly cols cells.
// '■' and '#' are walls, every other rune is open. Short templates are
// padded with open cells, long ones are truncated.
func ParseRow(template string, cols int) Row {
	row := make(Row, cols)
	i := 0
	for _, r := range template {
		if i >= cols {
			break
		}
		if r == WallGlyph || r == AltWallGlyph {
			row[i] = Wall
		}
		i++
	}
	return row
}

// SafeRow returns a row that is open on a window of width 3 around col and
// walled everywhere else. The window is shifted inwards at the edges, so col
// is always open. For 9 columns and col 4 this is "■■■   ■■■".
func SafeRow(cols, col int) Row {
	width := min(3, cols)
	start := min(max(col-1, 0), cols-width)
	return windowRow(cols, start, width)
}

// windowRow returns a row that is open on [start, start+width).
func windowRow(cols, start, width int) Row {
	row := make(Row, cols)
	for i := range row {
		if i < start || i >= start+width {
			row[i] = Wall
		}
	}
	return row
}

// At returns the cell at col, treating out-of-range columns as open.
func (r Row) At(col int) Cell {
	if col < 0 || col >= len(r) {
		return Open
	}
	return r[col]
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Equal reports whether two rows have the same cells.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Passable reports whether the row has at least one open cell.
func (r Row) Passable() bool {
	for _, c := range r {
		if c == Open {
			return true
		}
	}
	return false
}

// Window is a contiguous run of open cells, [Start, End).
type Window struct {
	Start int
	End   int
}

// Width returns the number of cells in the window.
func (w Window) Width() int {
	return w.End - w.Start
}

// Windows returns every maximal run of open cells from left to right.
func (r Row) Windows() []Window {
	var out []Window
	start := -1
	for i, c := range r {
		switch {
		case c == Open && start < 0:
			start = i
		case c == Wall && start >= 0:
			out = append(out, Window{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, Window{Start: start, End: len(r)})
	}
	return out
}

// String renders the row with template glyphs.
func (r Row) String() string {
	var sb strings.Builder
	sb.Grow(len(r) * 3)
	for _, c := range r {
		if c == Wall {
			sb.WriteRune(WallGlyph)
		} else {
			sb.WriteRune(OpenGlyph)
		}
	}
	return sb.String()
}
