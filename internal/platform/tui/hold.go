package tui

import "time"

// Key hold timing. Terminals report key presses but not releases, so a
// held key is inferred from auto-repeat: the first press holds long enough
// to cover the repeat delay, later repeats only need to bridge the repeat
// interval.
const (
	firstPressHold = 550 * time.Millisecond
	repeatHold     = 110 * time.Millisecond
	repeatWindow   = 150 * time.Millisecond
)

// HoldLatch turns discrete input into a continuous held level.
// Mouse buttons report real press and release; keys are latched.
type HoldLatch struct {
	mouse     bool
	until     time.Time
	lastPress time.Time
}

// KeyPress records a key press or auto-repeat at now.
func (h *HoldLatch) KeyPress(now time.Time) {
	hold := firstPressHold
	if !h.lastPress.IsZero() && now.Sub(h.lastPress) <= repeatWindow {
		hold = repeatHold
	}
	h.lastPress = now
	if end := now.Add(hold); end.After(h.until) {
		h.until = end
	}
}

// MousePress marks the button as down.
func (h *HoldLatch) MousePress() {
	h.mouse = true
}

// MouseRelease marks the button as up.
func (h *HoldLatch) MouseRelease() {
	h.mouse = false
}

// Release drops every held input.
func (h *HoldLatch) Release() {
	h.mouse = false
	h.until = time.Time{}
	h.lastPress = time.Time{}
}

// Held reports whether the control is down at now.
func (h *HoldLatch) Held(now time.Time) bool {
	return h.mouse || now.Before(h.until)
}
