package tui

import "github.com/vovakirdan/textdrive/internal/core"

// HoldTracker turns key presses into held actions. Terminals only report
// presses (and auto-repeats), so an action stays active for holdTicks ticks
// after its last press. Auto-repeat refreshes the press and keeps it held.
type HoldTracker struct {
	holdTicks uint64
	pressed   map[core.Action]uint64 // Action -> tick of last press
}

// NewHoldTracker creates a tracker. Values below 1 hold a press for exactly
// one tick.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{
		holdTicks: uint64(max(holdTicks, 1)),
		pressed:   make(map[core.Action]uint64),
	}
}

// Press records a press at the given tick. Pressing one direction releases
// the opposite one.
func (h *HoldTracker) Press(a core.Action, tick uint64) {
	switch a {
	case core.ActionLeft:
		delete(h.pressed, core.ActionRight)
	case core.ActionRight:
		delete(h.pressed, core.ActionLeft)
	}
	h.pressed[a] = tick
}

// Release drops an action before its hold expires.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.pressed, a)
}

// Held reports whether a is active at tick.
func (h *HoldTracker) Held(a core.Action, tick uint64) bool {
	at, ok := h.pressed[a]
	return ok && tick >= at && tick-at < h.holdTicks
}

// Frame builds a fresh input frame for the tick and forgets expired presses.
func (h *HoldTracker) Frame(tick uint64) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range h.pressed {
		if h.Held(a, tick) {
			frame.Set(a)
		} else if tick >= h.pressed[a] {
			delete(h.pressed, a)
		}
	}
	return frame
}

// Reset forgets all presses.
func (h *HoldTracker) Reset() {
	clear(h.pressed)
}
