package geometry

import "math/rand"

// TaperFunc scales the height of point i in a sequence of n segments
type TaperFunc func(i, n int) float64

// Shape describes a jagged silhouette for Jagged
type Shape struct {
	Segments     int
	SegmentWidth float64

	// MinRatio is the lowest height as a fraction of the extent
	MinRatio float64

	// Extent returns the maximum height of point i; negative values clamp to 0
	Extent func(i int) float64

	// Taper scales each height after the random draw, nil means no taper
	Taper TaperFunc

	// MidpointJitter is the full width of the uniform perturbation added to
	// inserted midpoints; 0 disables midpoint insertion
	MidpointJitter float64
}

// FixedExtent returns an Extent reporting the same height for every point
func FixedExtent(h float64) func(int) float64 {
	return func(int) float64 { return h }
}

// EdgeTaper pinches the first and last point to zero height and ramps linearly
// over one segment at each end, so consecutive silhouettes join seamlessly
func EdgeTaper(i, n int) float64 {
	switch {
	case i <= 1:
		return float64(i)
	case i >= n-1:
		return float64(n - i)
	}
	return 1
}

// EndTaper scales only the first and last point by f
func EndTaper(f float64) TaperFunc {
	return func(i, n int) float64 {
		if i == 0 || i == n {
			return f
		}
		return 1
	}
}

// Jagged generates a randomized point sequence starting at baseX, ascending in x
// Heights are measured from y=0; callers reflect them for floor-anchored shapes
// Output length is Segments+1, or 2*Segments+1 with midpoints
func Jagged(rng *rand.Rand, baseX float64, s Shape) []Point {
	if s.Segments < 1 {
		return []Point{{X: baseX, Y: 0}}
	}

	capacity := s.Segments + 1
	if s.MidpointJitter > 0 {
		capacity = 2*s.Segments + 1
	}
	points := make([]Point, 0, capacity)

	for i := 0; i <= s.Segments; i++ {
		x := baseX + float64(i)*s.SegmentWidth

		extent := 0.0
		if s.Extent != nil {
			extent = s.Extent(i)
		}
		if extent < 0 {
			extent = 0
		}
		minHeight := s.MinRatio * extent
		y := minHeight + (extent-minHeight)*rng.Float64()
		if s.Taper != nil {
			y *= s.Taper(i, s.Segments)
		}

		if i > 0 && s.MidpointJitter > 0 {
			prev := points[len(points)-1]
			points = append(points, Point{
				X: (prev.X + x) / 2,
				Y: (prev.Y+y)/2 + (rng.Float64()-0.5)*s.MidpointJitter,
			})
		}

		points = append(points, Point{X: x, Y: y})
	}

	return points
}

// Reflect maps heights to floor-anchored coordinates: y -> height - y
func Reflect(points []Point, height float64) {
	for i := range points {
		points[i].Y = height - points[i].Y
	}
}
