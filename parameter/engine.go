package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TargetFPS is the simulation tick rate the tuning values below assume
	TargetFPS = 60

	// TickInterval is the fixed simulation step at TargetFPS
	TickInterval = time.Second / TargetFPS

	// MaxCatchUpTicks caps ticks run by a single scheduler pump after a stall
	// Elapsed time beyond the cap is dropped and the schedule resynchronised
	MaxCatchUpTicks = 3

	// InputBufferSize is the capacity of the frontend to session input channel
	InputBufferSize = 64
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Terminal Hold Inference
const (
	// HoldGrace covers the keyboard's initial auto-repeat delay after the first press
	HoldGrace = 550 * time.Millisecond

	// RepeatGrace is the silence after an auto-repeat that ends a hold
	RepeatGrace = 120 * time.Millisecond
)
