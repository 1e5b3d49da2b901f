package world

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/parameter"
)

// Side selects the canvas edge a silhouette hangs from
type Side uint8

const (
	Ceiling Side = iota
	Floor
)

// String returns the side name
func (s Side) String() string {
	if s == Ceiling {
		return "ceiling"
	}
	return "floor"
}

// EdgeStrip is the endless rocky lip along the ceiling or floor
// Points ascend in x; the rightmost point stays at least one segment past the canvas
type EdgeStrip struct {
	Points       []geometry.Point
	SegmentWidth float64
	Side         Side

	rng     *rand.Rand
	canvasW float64
	canvasH float64
}

// NewEdgeStrip materializes a strip covering the canvas plus lookahead segments
func NewEdgeStrip(rng *rand.Rand, side Side, canvasW, canvasH float64) *EdgeStrip {
	s := &EdgeStrip{
		SegmentWidth: parameter.EdgeSegmentWidth,
		Side:         side,
		rng:          rng,
		canvasW:      canvasW,
		canvasH:      canvasH,
	}

	total := int(math.Ceil(canvasW/s.SegmentWidth)) + parameter.EdgeLookaheadSegments
	s.Points = make([]geometry.Point, 0, total+1)
	for i := 0; i <= total; i++ {
		s.Points = append(s.Points, s.point(float64(i)*s.SegmentWidth))
	}
	return s
}

func (s *EdgeStrip) point(x float64) geometry.Point {
	h := parameter.EdgeMinHeight + s.rng.Float64()*parameter.EdgeHeightRange
	if s.Side == Floor {
		h = s.canvasH - h
	}
	return geometry.Point{X: x, Y: h}
}

// Advance scrolls the strip, pruning behind and extending ahead
func (s *EdgeStrip) Advance(scrollSpeed float64) {
	geometry.Shift(s.Points, -scrollSpeed)

	drop := 0
	for drop < len(s.Points) && s.Points[drop].X+s.SegmentWidth < 0 {
		drop++
	}
	if drop > 0 {
		s.Points = append(s.Points[:0], s.Points[drop:]...)
	}

	if len(s.Points) == 0 {
		s.Points = append(s.Points, s.point(0))
	}
	for s.Points[len(s.Points)-1].X < s.canvasW+s.SegmentWidth {
		last := s.Points[len(s.Points)-1]
		s.Points = append(s.Points, s.point(last.X+s.SegmentWidth))
	}
}
