package world

import (
	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/parameter"
)

// Helipad is the launch platform; it scrolls away once the flight starts
type Helipad struct {
	geometry.Rect
}

// NewHelipad places the pad near the floor under the craft start position
func NewHelipad(canvasH float64) *Helipad {
	return &Helipad{Rect: geometry.Rect{
		X: parameter.HelipadX,
		Y: canvasH - parameter.HelipadHeight - parameter.HelipadLift,
		W: parameter.HelipadWidth,
		H: parameter.HelipadHeight,
	}}
}

// Advance scrolls the pad left until it is off-screen
func (h *Helipad) Advance(scrollSpeed float64) {
	if h.OffScreen() {
		return
	}
	h.X -= scrollSpeed
}

// OffScreen reports whether the pad has left the canvas
func (h *Helipad) OffScreen() bool {
	return h.Right() < 0
}
