package geometry

// Point is a mutable world-space position; X decreases as the world scrolls
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box with top-left origin
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x of the trailing edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y of the lower edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports strict overlap of two rectangles
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Interpolate returns the y on segment p-q at x
// Degenerate (vertical) segments return p.Y
func Interpolate(p, q Point, x float64) float64 {
	dx := q.X - p.X
	if dx == 0 {
		return p.Y
	}
	return p.Y + (q.Y-p.Y)*(x-p.X)/dx
}

// Shift moves every point horizontally by dx
func Shift(points []Point, dx float64) {
	for i := range points {
		points[i].X += dx
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
