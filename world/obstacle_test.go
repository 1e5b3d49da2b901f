package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/parameter"
)

const (
	canvasW = 800.0
	canvasH = 400.0
)

func spawnMany(t *testing.T, score, count int, fn func(o *Obstacle)) {
	t.Helper()
	for seed := int64(0); seed < int64(count); seed++ {
		fn(NewObstacle(rand.New(rand.NewSource(seed)), canvasW, canvasH, score))
	}
}

func TestObstacleSharedXCoordinates(t *testing.T) {
	spawnMany(t, 0, 200, func(o *Obstacle) {
		if len(o.Top) != 2*parameter.ObstacleSegments+1 {
			t.Fatalf("Expected %d top points, got %d", 2*parameter.ObstacleSegments+1, len(o.Top))
		}
		if len(o.Top) != len(o.Bottom) {
			t.Fatalf("Expected equal lengths, got %d and %d", len(o.Top), len(o.Bottom))
		}
		for i := range o.Top {
			if o.Top[i].X != o.Bottom[i].X {
				t.Fatalf("index %d: top x %v != bottom x %v", i, o.Top[i].X, o.Bottom[i].X)
			}
			if i > 0 && o.Top[i].X < o.Top[i-1].X {
				t.Fatalf("index %d: x decreased", i)
			}
		}
	})
}

func TestObstacleTaperEnds(t *testing.T) {
	spawnMany(t, 600, 200, func(o *Obstacle) {
		last := len(o.Top) - 1
		if o.Top[0].Y != 0 || o.Top[last].Y != 0 {
			t.Fatalf("Expected top ends at 0, got %v and %v", o.Top[0].Y, o.Top[last].Y)
		}
		if o.Bottom[0].Y != canvasH || o.Bottom[last].Y != canvasH {
			t.Fatalf("Expected bottom ends at %v, got %v and %v", canvasH, o.Bottom[0].Y, o.Bottom[last].Y)
		}
	})
}

func TestObstacleGapInvariant(t *testing.T) {
	for _, score := range []int{0, 250, 500, 999, 1000, 1001, 5000} {
		spawnMany(t, score, 300, func(o *Obstacle) {
			if o.GapPosition < parameter.GapSafeZone {
				t.Fatalf("score %d: gap position %v above safe zone", score, o.GapPosition)
			}
			if o.GapPosition+o.Gap > canvasH-parameter.GapSafeZone+1e-9 {
				t.Fatalf("score %d: gap end %v below safe zone", score, o.GapPosition+o.Gap)
			}
		})
	}
}

func TestObstacleGapRangeScenarios(t *testing.T) {
	tests := []struct {
		score    int
		min, max float64
	}{
		{0, 130, 180},
		{249, 130, 180},
		{250, 100, 150},
		{500, 90, 140},
		{1000, 90, 140},
		{1500, 45, 70},
	}

	for _, tt := range tests {
		minGap, maxGap := GapRange(tt.score)
		if minGap != tt.min || maxGap != tt.max {
			t.Errorf("score %d: expected [%v, %v], got [%v, %v]", tt.score, tt.min, tt.max, minGap, maxGap)
		}
		spawnMany(t, tt.score, 100, func(o *Obstacle) {
			if o.Gap < tt.min || o.Gap >= tt.max {
				t.Fatalf("score %d: gap %v outside [%v, %v)", tt.score, o.Gap, tt.min, tt.max)
			}
		})
	}
}

func TestGapRangeMonotonic(t *testing.T) {
	_, prev := GapRange(0)
	for score := 1; score <= parameter.HardModeScore; score++ {
		_, maxGap := GapRange(score)
		if maxGap > prev {
			t.Fatalf("maxGap increased at score %d: %v > %v", score, maxGap, prev)
		}
		prev = maxGap
	}
}

func TestObstacleLevel(t *testing.T) {
	o := NewObstacle(rand.New(rand.NewSource(1)), canvasW, canvasH, 760)
	if o.Level != 3 {
		t.Errorf("Expected level 3, got %d", o.Level)
	}
	if o.X != canvasW {
		t.Errorf("Expected spawn x %v, got %v", canvasW, o.X)
	}
	if o.Width < parameter.ObstacleMinWidth || o.Width >= parameter.ObstacleMinWidth+parameter.ObstacleWidthRange {
		t.Errorf("Width %v out of range", o.Width)
	}
}

func TestObstacleCollisionSymmetry(t *testing.T) {
	spawnMany(t, 0, 200, func(o *Obstacle) {
		o.Advance(canvasW - 200)

		for _, frac := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			x := o.X + o.Width*frac

			inside := geometry.Rect{X: x, Y: o.GapPosition + 1, W: 50, H: o.Gap - 2}
			if o.CollidesWith(inside) {
				t.Fatalf("box inside gap at frac %v reported collision (gap %v@%v)", frac, o.Gap, o.GapPosition)
			}

			// Boxes flush with the canvas edges overlap the silhouettes away from the tapered ends
			if frac < 0.2 || frac > 0.8 {
				continue
			}
			top := geometry.Rect{X: x, Y: 0, W: 50, H: 20}
			if !o.CollidesWith(top) {
				t.Fatalf("box over top silhouette at frac %v not detected", frac)
			}
			bottom := geometry.Rect{X: x, Y: canvasH - 20, W: 50, H: 20}
			if !o.CollidesWith(bottom) {
				t.Fatalf("box over bottom silhouette at frac %v not detected", frac)
			}
		}
	})
}

func TestObstacleCollisionHorizontalReject(t *testing.T) {
	o := NewObstacle(rand.New(rand.NewSource(3)), canvasW, canvasH, 0)
	if o.CollidesWith(geometry.Rect{X: o.X - 100, Y: 0, W: 50, H: canvasH}) {
		t.Error("Expected no collision left of obstacle")
	}
	if o.CollidesWith(geometry.Rect{X: o.X + o.Width + 1, Y: 0, W: 50, H: canvasH}) {
		t.Error("Expected no collision right of obstacle")
	}
	// Leading edge left of the obstacle: negative segment is never a hit
	if o.CollidesWith(geometry.Rect{X: o.X - 10, Y: 0, W: 50, H: canvasH}) {
		t.Error("Expected negative segment to report no collision")
	}
}

func TestObstacleCollisionClampsLastSegment(t *testing.T) {
	o := NewObstacle(rand.New(rand.NewSource(4)), canvasW, canvasH, 0)
	// x exactly at the trailing edge maps to segment index == segments
	r := geometry.Rect{X: o.X + o.Width, Y: 1, W: 10, H: 10}
	if o.CollidesWith(r) {
		t.Error("Expected tapered trailing edge to leave room at y=1")
	}
}

func TestObstacleAdvanceAndOffScreen(t *testing.T) {
	o := NewObstacle(rand.New(rand.NewSource(5)), canvasW, canvasH, 0)
	x0, p0 := o.X, o.Top[3].X
	o.Advance(9)
	if o.X != x0-9 || math.Abs(o.Top[3].X-(p0-9)) > 1e-9 || o.Bottom[3].X != o.Top[3].X {
		t.Errorf("Advance did not shift uniformly")
	}
	if o.OffScreen() {
		t.Error("Expected obstacle still on screen")
	}
	o.Advance(o.X + o.Width + 0.1)
	if !o.OffScreen() {
		t.Error("Expected obstacle off screen")
	}
}
