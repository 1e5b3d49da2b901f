package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/cave-copter/engine"
)

// Controls is one frame of edge-triggered input
type Controls struct {
	Pressed  bool // Space, up, left mouse or a touch went down
	Released bool // The same went up
	Cycle    bool
	Debug    bool
	Mute     bool
	Quit     bool
}

// pollControls reads this frame's input edges from ebiten
func pollControls(touches []ebiten.TouchID) (Controls, []ebiten.TouchID) {
	var c Controls

	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	c.Pressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(touches) > 0

	touches = inpututil.AppendJustReleasedTouchIDs(touches[:0])
	c.Released = inpututil.IsKeyJustReleased(ebiten.KeySpace) ||
		inpututil.IsKeyJustReleased(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		len(touches) > 0

	c.Cycle = inpututil.IsKeyJustPressed(ebiten.KeyC)
	c.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	c.Mute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	c.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return c, touches
}

// Inputs translates control edges into session inputs
// A press and release inside one frame still ends lifted off
func (c Controls) Inputs() []engine.Input {
	var out []engine.Input
	if c.Released && !c.Pressed {
		out = append(out, engine.LiftStop)
	}
	if c.Pressed {
		out = append(out, engine.Confirm, engine.LiftStart)
		if c.Released {
			out = append(out, engine.LiftStop)
		}
	}
	if c.Cycle {
		out = append(out, engine.CycleCraft)
	}
	return out
}
