package world

import (
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/cave-copter/geometry"
)

const probeCellSize = 16

var tagTerrain = resolv.NewTag("terrain")

// Probe tests the whole craft box against obstacle silhouettes
// Each silhouette segment becomes a convex trapezoid anchored to its canvas edge;
// only segments under the box's x-range are materialized per query
type Probe struct {
	space   *resolv.Space
	canvasH float64
	shapes  []resolv.IShape
}

// NewProbe creates a probe sized to the canvas
func NewProbe(canvasW, canvasH float64) *Probe {
	return &Probe{
		space:   resolv.NewSpace(int(canvasW), int(canvasH), probeCellSize, probeCellSize),
		canvasH: canvasH,
	}
}

// Collides reports whether box overlaps any obstacle silhouette
func (p *Probe) Collides(obstacles []*Obstacle, box geometry.Rect) bool {
	defer p.clear()

	for _, o := range obstacles {
		if box.Right() < o.X || box.X > o.X+o.Width {
			continue
		}
		p.addSilhouette(o.Top, box, Ceiling)
		p.addSilhouette(o.Bottom, box, Floor)
	}
	if len(p.shapes) == 0 {
		return false
	}

	craft := resolv.NewRectangleFromTopLeft(box.X, box.Y, box.W, box.H)
	p.space.Add(craft)
	p.shapes = append(p.shapes, craft)

	hit := false
	craft.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: craft.SelectTouchingCells(1).FilterShapes().ByTags(tagTerrain),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			hit = true
			return false
		},
	})
	return hit
}

func (p *Probe) addSilhouette(points []geometry.Point, box geometry.Rect, side Side) {
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		if b.X < box.X || a.X > box.Right() || b.X <= a.X {
			continue
		}
		if poly := p.segment(a, b, side); poly != nil {
			poly.Tags().Set(tagTerrain)
			p.space.Add(poly)
			p.shapes = append(p.shapes, poly)
		}
	}
}

// segment builds the clockwise trapezoid between edge and a-b, relative to a.X
// Vertices lying on the edge collapse so the polygon never repeats a point
func (p *Probe) segment(a, b geometry.Point, side Side) *resolv.ConvexPolygon {
	ay := geometry.Clamp(a.Y, 0, p.canvasH)
	by := geometry.Clamp(b.Y, 0, p.canvasH)
	w := b.X - a.X

	var verts []float64
	switch side {
	case Ceiling:
		verts = []float64{0, 0, w, 0}
		if by > 0 {
			verts = append(verts, w, by)
		}
		if ay > 0 {
			verts = append(verts, 0, ay)
		}
	case Floor:
		h := p.canvasH
		if ay < h {
			verts = append(verts, 0, ay)
		}
		if by < h {
			verts = append(verts, w, by)
		}
		verts = append(verts, w, h, 0, h)
	}

	if len(verts) < 6 {
		return nil
	}
	return resolv.NewConvexPolygon(a.X, 0, verts)
}

func (p *Probe) clear() {
	if len(p.shapes) > 0 {
		p.space.Remove(p.shapes...)
		p.shapes = p.shapes[:0]
	}
}
