package world

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/parameter"
)

// Obstacle is a pair of jagged silhouettes, one hanging from the ceiling and one
// rising from the floor, with a gap window between them
// Top and Bottom share x-coordinates index by index
type Obstacle struct {
	X           float64
	Width       float64
	Gap         float64
	GapPosition float64 // y of the gap's upper edge
	Level       int     // Difficulty level at spawn
	Top         []geometry.Point
	Bottom      []geometry.Point
}

// GapRange returns the [min, max) gap height for a displayed score
func GapRange(score int) (minGap, maxGap float64) {
	if score < 0 {
		score = 0
	}
	level := score / parameter.DifficultyStep
	reduction := math.Min(float64(level)*parameter.GapReductionPerLevel, parameter.GapReductionMax)

	minGap = math.Max(parameter.BaseMinGap-reduction, parameter.GapFloorMin)
	maxGap = math.Max(parameter.BaseMaxGap-reduction, parameter.GapFloorMax)

	if score > parameter.HardModeScore {
		minGap = math.Floor(minGap * parameter.HardModeFactor)
		maxGap = math.Floor(maxGap * parameter.HardModeFactor)
	}
	return minGap, maxGap
}

// NewObstacle spawns an obstacle at the right edge of the canvas
// score is the displayed score and selects the difficulty level
func NewObstacle(rng *rand.Rand, canvasW, canvasH float64, score int) *Obstacle {
	o := &Obstacle{
		X:     canvasW,
		Width: parameter.ObstacleMinWidth + rng.Float64()*parameter.ObstacleWidthRange,
	}
	if score > 0 {
		o.Level = score / parameter.DifficultyStep
	}

	minGap, maxGap := GapRange(score)
	o.Gap = minGap + rng.Float64()*(maxGap-minGap)

	// Gap placement: one of three equal sections of the playable band
	safe := parameter.GapSafeZone
	playable := canvasH - 2*safe
	if playable < 0 {
		playable = 0
	}
	if o.Gap > playable {
		o.Gap = playable
	}
	sectionH := playable / parameter.GapSections
	sectionStart := safe + float64(rng.Intn(parameter.GapSections))*sectionH
	sectionEnd := sectionStart + sectionH - o.Gap
	o.GapPosition = sectionStart + rng.Float64()*(sectionEnd-sectionStart)

	// A gap taller than its section overshoots the band; pull it back inside
	o.GapPosition = geometry.Clamp(o.GapPosition, safe, canvasH-safe-o.Gap)

	segW := o.Width / parameter.ObstacleSegments
	topExtent := o.GapPosition - parameter.ObstacleTipClearance
	bottomExtent := canvasH - (o.GapPosition + o.Gap) - parameter.ObstacleTipClearance

	o.Top = geometry.Jagged(rng, o.X, obstacleShape(segW, topExtent))
	o.Bottom = geometry.Jagged(rng, o.X, obstacleShape(segW, bottomExtent))
	geometry.Reflect(o.Bottom, canvasH)

	return o
}

func obstacleShape(segW, extent float64) geometry.Shape {
	return geometry.Shape{
		Segments:       parameter.ObstacleSegments,
		SegmentWidth:   segW,
		MinRatio:       parameter.ObstacleMinHeightRatio,
		Extent:         geometry.FixedExtent(extent),
		Taper:          geometry.EdgeTaper,
		MidpointJitter: parameter.ObstacleMidpointJitter,
	}
}

// Advance scrolls the obstacle left
func (o *Obstacle) Advance(scrollSpeed float64) {
	o.X -= scrollSpeed
	geometry.Shift(o.Top, -scrollSpeed)
	geometry.Shift(o.Bottom, -scrollSpeed)
}

// OffScreen reports whether the trailing edge has left the canvas
func (o *Obstacle) OffScreen() bool {
	return o.X+o.Width < 0
}

// CollidesWith tests the craft box against both silhouettes
// Only the leading x-edge of the box is sampled; a trailing edge clipping a
// sharp tip is not detected (see Probe for the full overlap test)
func (o *Obstacle) CollidesWith(r geometry.Rect) bool {
	if r.Right() < o.X || r.X > o.X+o.Width {
		return false
	}

	segments := len(o.Top) - 1
	if segments < 1 || len(o.Bottom) != len(o.Top) {
		return false
	}
	segW := o.Width / float64(segments)

	seg := int(math.Floor((r.X - o.X) / segW))
	if seg > segments-1 {
		seg = segments - 1
	}
	if seg < 0 {
		return false
	}

	topY := geometry.Interpolate(o.Top[seg], o.Top[seg+1], r.X)
	bottomY := geometry.Interpolate(o.Bottom[seg], o.Bottom[seg+1], r.X)

	return r.Y < topY || r.Bottom() > bottomY
}
