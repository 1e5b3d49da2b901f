package physics

import (
	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/parameter"
)

// Craft is the player's helicopter
// X stays fixed; the world scrolls past it
type Craft struct {
	X, Y     float64
	Velocity float64
	Lifting  bool
	Variant  Variant
}

// NewCraft places a resting craft of variant v at (x, y)
func NewCraft(v Variant, x, y float64) *Craft {
	return &Craft{X: x, Y: y, Variant: v}
}

// SetLifting toggles the lift input
func (c *Craft) SetLifting(on bool) {
	c.Lifting = on
}

// Step integrates one tick and clamps the craft inside [0, canvasH - effective height]
// Returns true when a clamp fired; reaching a bound is never fatal here
func (c *Craft) Step(canvasH float64) bool {
	v := c.Variant

	if c.Lifting {
		c.Velocity += v.LiftForce * parameter.LiftScale
		if c.Velocity < -v.MaxLiftVelocity {
			c.Velocity = -v.MaxLiftVelocity
		}
	}

	c.Velocity += v.Gravity
	if c.Velocity > v.MaxFallVelocity {
		c.Velocity = v.MaxFallVelocity
	}

	c.Y += c.Velocity

	floor := canvasH - (v.Height + v.VerticalOffset)
	clamped := false
	if c.Y > floor {
		c.Y = floor
		c.Velocity = 0
		clamped = true
	}
	if c.Y < 0 {
		c.Y = 0
		c.Velocity = 0
		clamped = true
	}
	return clamped
}

// Bounds returns the collision box
func (c *Craft) Bounds() geometry.Rect {
	return geometry.Rect{X: c.X, Y: c.Y, W: c.Variant.Width, H: c.Variant.Height}
}

// Reset rests the craft at y with no velocity or lift
func (c *Craft) Reset(y float64) {
	c.Y = y
	c.Velocity = 0
	c.Lifting = false
}
