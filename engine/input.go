package engine

import "time"

// Input is a discrete player signal consumed at the start of the next tick
type Input uint8

const (
	LiftStart Input = iota + 1
	LiftStop
	Confirm
	CycleCraft // Start screen only
)

// String returns the input name
func (i Input) String() string {
	switch i {
	case LiftStart:
		return "LiftStart"
	case LiftStop:
		return "LiftStop"
	case Confirm:
		return "Confirm"
	case CycleCraft:
		return "CycleCraft"
	}
	return "Unknown"
}

// HoldTracker infers key release for frontends without key-up events
// A press starts a hold; auto-repeat presses extend it; silence past the grace
// window ends it. The first window covers the keyboard's initial repeat delay
type HoldTracker struct {
	HoldGrace   time.Duration // After the first press
	RepeatGrace time.Duration // After each repeat

	held     bool
	deadline time.Time
}

// NewHoldTracker creates a tracker with the given grace windows
func NewHoldTracker(holdGrace, repeatGrace time.Duration) *HoldTracker {
	return &HoldTracker{HoldGrace: holdGrace, RepeatGrace: repeatGrace}
}

// Press records a key press and returns the inputs it produces
func (h *HoldTracker) Press(now time.Time) []Input {
	if h.held {
		h.deadline = now.Add(h.RepeatGrace)
		return nil
	}
	h.held = true
	h.deadline = now.Add(h.HoldGrace)
	return []Input{Confirm, LiftStart}
}

// Poll returns LiftStop once the hold has lapsed
func (h *HoldTracker) Poll(now time.Time) []Input {
	if h.held && now.After(h.deadline) {
		h.held = false
		return []Input{LiftStop}
	}
	return nil
}

// Held reports whether a hold is active
func (h *HoldTracker) Held() bool {
	return h.held
}

// Deadline returns when the current hold lapses without further presses
func (h *HoldTracker) Deadline() time.Time {
	return h.deadline
}
