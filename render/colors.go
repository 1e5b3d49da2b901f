package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbTextDim    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHighlight  = tcell.NewRGBColor(255, 215, 0)   // Gold for new records

	RgbRock      = tcell.NewRGBColor(112, 86, 68)  // Obstacle rock
	RgbRockEdge  = tcell.NewRGBColor(150, 120, 96) // Obstacle rim
	RgbTerrain   = tcell.NewRGBColor(74, 60, 52)   // Ceiling and floor lip
	RgbFormation = tcell.NewRGBColor(44, 42, 58)   // Distant background rock
	RgbHelipad   = tcell.NewRGBColor(51, 51, 51)   // #333
	RgbPadMark   = tcell.NewRGBColor(255, 215, 0)  // Pad stripe

	RgbRotor = tcell.NewRGBColor(26, 26, 26) // #1A1A1A

	RgbDebug = tcell.NewRGBColor(0, 200, 200) // Vibrant cyan
)

// craftColors maps variant names to body and accent colors
var craftColors = map[string][2]tcell.Color{
	"trainer": {tcell.NewRGBColor(70, 160, 90), tcell.NewRGBColor(255, 255, 255)},
	"scout":   {tcell.NewRGBColor(70, 130, 180), tcell.NewRGBColor(255, 215, 0)}, // Steel blue, bright yellow
	"tanker":  {tcell.NewRGBColor(93, 64, 55), tcell.NewRGBColor(255, 111, 0)},   // Dark brown, warning orange
	"heavy":   {tcell.NewRGBColor(96, 96, 110), tcell.NewRGBColor(220, 60, 60)},
}

// CraftColors returns body and accent colors for a variant
// Unknown variants use the scout palette
func CraftColors(name string) (body, accent tcell.Color) {
	c, ok := craftColors[name]
	if !ok {
		c = craftColors["scout"]
	}
	return c[0], c[1]
}

// Fade blends c toward the background by opacity in [0, 1]
func Fade(r, g, b int32, opacity float64) tcell.Color {
	opacity = min(max(opacity, 0), 1)
	br, bg, bb := RgbBackground.RGB()
	mix := func(fg, bgc int32) int32 {
		return bgc + int32(float64(fg-bgc)*opacity)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
