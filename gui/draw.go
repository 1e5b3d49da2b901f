package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/world"
)

// Palette
var (
	colorBackground = color.RGBA{26, 27, 38, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorTextDim    = color.RGBA{180, 180, 180, 255}
	colorHighlight  = color.RGBA{255, 215, 0, 255}
	colorRock       = color.RGBA{112, 86, 68, 255}
	colorTerrain    = color.RGBA{74, 60, 52, 255}
	colorFormation  = color.RGBA{44, 42, 58, 255}
	colorHelipad    = color.RGBA{51, 51, 51, 255}
	colorPadMark    = color.RGBA{255, 215, 0, 255}
	colorRotor      = color.RGBA{26, 26, 26, 255}
	colorWindow     = color.RGBA{135, 206, 235, 220}
)

// craftColors maps variant names to body and accent colors
var craftColors = map[string][2]color.RGBA{
	"trainer": {{70, 160, 90, 255}, {255, 255, 255, 255}},
	"scout":   {{70, 130, 180, 255}, {255, 215, 0, 255}}, // Steel blue, bright yellow
	"tanker":  {{93, 64, 55, 255}, {255, 111, 0, 255}},   // Dark brown, warning orange
	"heavy":   {{96, 96, 110, 255}, {220, 60, 60, 255}},
}

func craftPalette(name string) (body, accent color.RGBA) {
	c, ok := craftColors[name]
	if !ok {
		c = craftColors["scout"]
	}
	return c[0], c[1]
}

// silhouetteMesh triangulates the area between a silhouette and its canvas edge
// Each segment becomes a trapezoid of two triangles, so concave outlines fill correctly
func silhouetteMesh(points []geometry.Point, side world.Side, canvasH float64, clr color.RGBA, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	edge := float32(0)
	if side == world.Floor {
		edge = float32(canvasH)
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

	vertex := func(x, y float32) ebiten.Vertex {
		return ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a}
	}

	for i := 1; i < len(points); i++ {
		p, q := points[i-1], points[i]
		base := uint16(len(vs))
		vs = append(vs,
			vertex(float32(p.X), edge),
			vertex(float32(q.X), edge),
			vertex(float32(q.X), float32(q.Y)),
			vertex(float32(p.X), float32(p.Y)),
		)
		is = append(is, base, base+1, base+2, base, base+2, base+3)
	}
	return vs, is
}

// fade scales a color's alpha by opacity in [0, 1]
func fade(c color.RGBA, opacity float64) color.RGBA {
	opacity = min(max(opacity, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
