package world

import (
	"math/rand"

	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/parameter"
)

// Formation is a background rock silhouette drifting at parallax speed
// It never collides with the craft
type Formation struct {
	X      float64
	Width  float64
	Height float64
	Side   Side
	Points []geometry.Point
}

// NewFormation spawns a formation with its left edge at x
func NewFormation(rng *rand.Rand, x, canvasH float64) *Formation {
	f := &Formation{
		X:      x,
		Width:  parameter.FormationMinWidth + rng.Float64()*parameter.FormationWidthRange,
		Height: parameter.FormationMinHeight + rng.Float64()*parameter.FormationHeightRange,
		Side:   Floor,
	}
	if rng.Float64() > 0.5 {
		f.Side = Ceiling
	}

	segments := parameter.FormationMinSegments + rng.Intn(parameter.FormationSegmentRange)
	f.Points = geometry.Jagged(rng, x, geometry.Shape{
		Segments:     segments,
		SegmentWidth: f.Width / float64(segments),
		MinRatio:     parameter.FormationMinHeightRatio,
		Extent:       geometry.FixedExtent(f.Height),
		Taper:        geometry.EndTaper(parameter.FormationEndTaper),
	})
	if f.Side == Floor {
		geometry.Reflect(f.Points, canvasH)
	}
	return f
}

// Advance drifts the formation at parallax speed
func (f *Formation) Advance(scrollSpeed float64) {
	dx := scrollSpeed * parameter.FormationParallax
	f.X -= dx
	geometry.Shift(f.Points, -dx)
}

// OffScreen reports whether the formation has fully left the canvas
func (f *Formation) OffScreen() bool {
	return f.X+f.Width < 0
}
