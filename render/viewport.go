package render

import (
	"math"

	"github.com/lixenwraith/cave-copter/geometry"
)

// Viewport maps world units onto a grid of terminal cells
// Column c covers world x in [c*ScaleX, (c+1)*ScaleX)
type Viewport struct {
	Cols, Rows     int
	ScaleX, ScaleY float64 // World units per cell
}

// NewViewport fits a worldW x worldH canvas into cols x rows cells
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return Viewport{
		Cols:   cols,
		Rows:   rows,
		ScaleX: worldW / float64(cols),
		ScaleY: worldH / float64(rows),
	}
}

// Cell returns the cell containing world point (x, y); it may lie off-grid
func (v Viewport) Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / v.ScaleX)), int(math.Floor(y / v.ScaleY))
}

// CenterX returns the world x at the middle of column col
func (v Viewport) CenterX(col int) float64 {
	return (float64(col) + 0.5) * v.ScaleX
}

// CellRect returns the inclusive cell range covered by r, clipped to the grid
// ok is false when nothing is visible
func (v Viewport) CellRect(r geometry.Rect) (c0, r0, c1, r1 int, ok bool) {
	c0, r0 = v.Cell(r.X, r.Y)
	c1, r1 = v.Cell(r.Right(), r.Bottom())
	// The far edge belongs to the cell before it
	if float64(c1)*v.ScaleX == r.Right() {
		c1--
	}
	if float64(r1)*v.ScaleY == r.Bottom() {
		r1--
	}
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, v.Cols-1), min(r1, v.Rows-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

// Sample returns the silhouette height at world x by linear interpolation
// points must ascend in x; ok is false when x lies outside them
func Sample(points []geometry.Point, x float64) (float64, bool) {
	n := len(points)
	if n == 0 || x < points[0].X || x > points[n-1].X {
		return 0, false
	}
	for i := 1; i < n; i++ {
		if x <= points[i].X {
			return geometry.Interpolate(points[i-1], points[i], x), true
		}
	}
	return points[n-1].Y, true
}
