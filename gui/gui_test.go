package gui

import (
	"image/color"
	"slices"
	"testing"

	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/world"
)

func TestControlsInputs(t *testing.T) {
	tests := []struct {
		name string
		c    Controls
		want []engine.Input
	}{
		{"idle", Controls{}, nil},
		{"press", Controls{Pressed: true}, []engine.Input{engine.Confirm, engine.LiftStart}},
		{"release", Controls{Released: true}, []engine.Input{engine.LiftStop}},
		{"tap", Controls{Pressed: true, Released: true}, []engine.Input{engine.Confirm, engine.LiftStart, engine.LiftStop}},
		{"cycle", Controls{Cycle: true}, []engine.Input{engine.CycleCraft}},
		{"debug only", Controls{Debug: true, Mute: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Inputs()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSilhouetteMesh(t *testing.T) {
	points := []geometry.Point{{X: 0, Y: 20}, {X: 10, Y: 35}, {X: 20, Y: 5}}
	clr := color.RGBA{255, 0, 0, 255}

	vs, is := silhouetteMesh(points, world.Ceiling, 400, clr, nil, nil)
	if len(vs) != 8 || len(is) != 12 {
		t.Fatalf("Expected 8 vertices and 12 indices, got %d and %d", len(vs), len(is))
	}
	if vs[0].DstY != 0 || vs[1].DstY != 0 {
		t.Errorf("Expected ceiling trapezoid anchored at y=0, got %v and %v", vs[0].DstY, vs[1].DstY)
	}
	if vs[2].DstX != 10 || vs[2].DstY != 35 {
		t.Errorf("Expected outline vertex (10, 35), got (%v, %v)", vs[2].DstX, vs[2].DstY)
	}
	if vs[0].ColorR != 1 || vs[0].ColorG != 0 {
		t.Errorf("Expected red vertex color, got %v %v", vs[0].ColorR, vs[0].ColorG)
	}

	// Appending continues index numbering from the existing vertices
	vs, is = silhouetteMesh(points[:2], world.Floor, 400, clr, vs, is)
	if len(vs) != 12 || len(is) != 18 {
		t.Fatalf("Expected 12 vertices and 18 indices, got %d and %d", len(vs), len(is))
	}
	if vs[8].DstY != 400 {
		t.Errorf("Expected floor trapezoid anchored at canvas height, got %v", vs[8].DstY)
	}
	if is[12] != 8 || is[17] != 11 {
		t.Errorf("Expected indices offset by 8, got %v", is[12:])
	}
}

func TestSilhouetteMeshDegenerate(t *testing.T) {
	vs, is := silhouetteMesh([]geometry.Point{{X: 1, Y: 1}}, world.Floor, 100, colorRock, nil, nil)
	if len(vs) != 0 || len(is) != 0 {
		t.Errorf("Expected no mesh for a single point, got %d vertices", len(vs))
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := fade(c, 1); got != c {
		t.Errorf("Expected unchanged color, got %v", got)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("Expected transparent, got %v", got)
	}
	if got := fade(c, 0.5); got.A != 127 || got.R != 100 {
		t.Errorf("Expected half premultiplied color, got %v", got)
	}
	if got := fade(c, 2); got != c {
		t.Errorf("Expected opacity clamped to 1, got %v", got)
	}
}

func TestCraftPalette(t *testing.T) {
	body, accent := craftPalette("tanker")
	if body != (color.RGBA{93, 64, 55, 255}) || accent != (color.RGBA{255, 111, 0, 255}) {
		t.Errorf("Expected tanker colors, got %v %v", body, accent)
	}
	body, _ = craftPalette("unknown")
	if want, _ := craftPalette("scout"); body != want {
		t.Errorf("Expected scout fallback, got %v", body)
	}
}
