package geometry

import (
	"math"
	"math/rand"
	"testing"
)

func obstacleShape(extent float64) Shape {
	return Shape{
		Segments:       8,
		SegmentWidth:   15,
		MinRatio:       0.4,
		Extent:         FixedExtent(extent),
		Taper:          EdgeTaper,
		MidpointJitter: 15,
	}
}

func TestJaggedLengthAndOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := Jagged(rng, 800, obstacleShape(120))

	if len(points) != 17 {
		t.Fatalf("Expected 17 points (8 segments + 8 midpoints), got %d", len(points))
	}
	if points[0].X != 800 {
		t.Errorf("Expected first x 800, got %v", points[0].X)
	}
	if want := 800 + 8*15.0; points[len(points)-1].X != want {
		t.Errorf("Expected last x %v, got %v", want, points[len(points)-1].X)
	}
	for i := 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			t.Fatalf("Expected ascending x, point %d (%v) < point %d (%v)", i, points[i].X, i-1, points[i-1].X)
		}
	}
}

func TestJaggedTaperPinchesEnds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		points := Jagged(rng, 0, obstacleShape(200))
		if points[0].Y != 0 {
			t.Fatalf("seed %d: expected first height 0, got %v", seed, points[0].Y)
		}
		if points[len(points)-1].Y != 0 {
			t.Fatalf("seed %d: expected last height 0, got %v", seed, points[len(points)-1].Y)
		}
	}
}

func TestJaggedHeightBounds(t *testing.T) {
	const extent = 100.0
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		points := Jagged(rng, 0, obstacleShape(extent))

		// Even indices are segment points, odd indices are midpoints
		for i := 2; i < len(points)-2; i += 2 {
			y := points[i].Y
			if y < 0.4*extent || y > extent {
				t.Errorf("seed %d: segment point %d height %v outside [%v, %v]", seed, i, y, 0.4*extent, extent)
			}
		}
		for i := 1; i < len(points); i += 2 {
			mean := (points[i-1].Y + points[i+1].Y) / 2
			if math.Abs(points[i].Y-mean) > 7.5 {
				t.Errorf("seed %d: midpoint %d deviates %v from mean", seed, i, points[i].Y-mean)
			}
			if points[i].X != (points[i-1].X+points[i+1].X)/2 {
				t.Errorf("seed %d: midpoint %d not at mean x", seed, i)
			}
		}
	}
}

func TestJaggedNegativeExtentClamps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := obstacleShape(-50)
	s.MidpointJitter = 0
	for _, p := range Jagged(rng, 0, s) {
		if p.Y != 0 {
			t.Fatalf("Expected zero height for negative extent, got %v", p.Y)
		}
	}
}

func TestJaggedWithoutMidpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := Shape{
		Segments:     5,
		SegmentWidth: 20,
		MinRatio:     0.6,
		Extent:       FixedExtent(100),
		Taper:        EndTaper(0.2),
	}
	points := Jagged(rng, 10, s)
	if len(points) != 6 {
		t.Fatalf("Expected 6 points, got %d", len(points))
	}
	if points[0].Y > 20 || points[0].Y < 12 {
		t.Errorf("Expected end point scaled into [12, 20], got %v", points[0].Y)
	}
	if points[2].Y < 60 {
		t.Errorf("Expected interior point >= 60, got %v", points[2].Y)
	}
}

func TestEdgeTaper(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 8, 0}, {1, 8, 1}, {4, 8, 1}, {7, 8, 1}, {8, 8, 0},
	}
	for _, tt := range tests {
		if got := EdgeTaper(tt.i, tt.n); got != tt.want {
			t.Errorf("EdgeTaper(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	p, q := Point{X: 0, Y: 10}, Point{X: 10, Y: 30}
	if got := Interpolate(p, q, 5); got != 20 {
		t.Errorf("Expected 20 at midpoint, got %v", got)
	}
	if got := Interpolate(p, Point{X: 0, Y: 99}, 0); got != 10 {
		t.Errorf("Expected p.Y for vertical segment, got %v", got)
	}
}

func TestReflectAndShift(t *testing.T) {
	points := []Point{{X: 0, Y: 10}, {X: 5, Y: 0}}
	Reflect(points, 400)
	Shift(points, -9)
	if points[0] != (Point{X: -9, Y: 390}) || points[1] != (Point{X: -4, Y: 400}) {
		t.Errorf("Unexpected points after reflect+shift: %+v", points)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("Expected overlap")
	}
	if a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("Expected touching edges not to overlap")
	}
}
