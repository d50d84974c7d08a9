package tui

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// HeldKeys approximates pressed-state for terminals, which report key presses
// and auto-repeats but never releases. An action counts as held until hold
// has passed since its last press.
type HeldKeys struct {
	hold     time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:     hold,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of an action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.lastSeen[a] = now
}

// Frame returns the actions held at now and forgets expired ones.
// A press is always visible to at least the first frame that follows it.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, seen := range h.lastSeen {
		frame.Set(a)
		if now.Sub(seen) >= h.hold {
			delete(h.lastSeen, a)
		}
	}
	return frame
}
