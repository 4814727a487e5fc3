package core

import "time"

// DefaultHold is the hold window used when none is configured.
const DefaultHold = 150 * time.Millisecond

// KeyHold keeps a direction active for a short window after each press.
// Terminals report presses and autorepeat but never releases, so a held
// arrow key shows up as a stream of presses that keep the window open.
// A press of one direction releases the other.
type KeyHold struct {
	hold  time.Duration
	until map[Action]time.Time
}

// NewKeyHold creates a tracker with the given window. Non-positive values
// fall back to DefaultHold.
func NewKeyHold(hold time.Duration) *KeyHold {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyHold{hold: hold, until: make(map[Action]time.Time)}
}

// Press opens the hold window for a at now.
func (h *KeyHold) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.until, ActionRight)
	case ActionRight:
		delete(h.until, ActionLeft)
	}
	h.until[a] = now.Add(h.hold)
}

// Apply sets every action still inside its hold window and forgets the rest.
func (h *KeyHold) Apply(frame *InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release drops every held action.
func (h *KeyHold) Release() {
	clear(h.until)
}
