package gui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/leaderboard"
	"github.com/lixenwraith/cave-copter/parameter"
	"github.com/lixenwraith/cave-copter/physics"
	"github.com/lixenwraith/cave-copter/status"
	"github.com/lixenwraith/cave-copter/world"
)

const (
	title       = "CAVE COPTER"
	promptStart = "Press Space to Start"
	promptTake  = "Press Space to Take Off"
	promptOver  = "Game Over!"
	promptAgain = "Press Space to Restart"
	promptLetGo = "Release to continue"
)

// Standings supplies leaderboard rows for the game over screen
type Standings interface {
	Entries() []leaderboard.Entry
}

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
}

// Game adapts a session to ebiten's Update/Draw/Layout loop
// Ticks are still gated by the scheduler, so the simulation rate is independent of TPS
type Game struct {
	session   *engine.Session
	sched     *engine.Scheduler
	reg       *status.Registry
	standings Standings
	muter     Muter
	debug     bool

	face    *text.GoXFace
	white   *ebiten.Image
	touches []ebiten.TouchID
	vs      []ebiten.Vertex
	is      []uint16
}

// NewGame creates the ebiten game; standings and muter may be nil
func NewGame(session *engine.Session, sched *engine.Scheduler, reg *status.Registry, standings Standings, muter Muter, debug bool) *Game {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Game{
		session:   session,
		sched:     sched,
		reg:       reg,
		standings: standings,
		muter:     muter,
		debug:     debug,
		face:      text.NewGoXFace(bitmapfont.Face),
		white:     img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update applies this frame's input and runs due ticks
func (g *Game) Update() error {
	var c Controls
	c, g.touches = pollControls(g.touches)
	if c.Quit {
		return ebiten.Termination
	}
	if c.Debug {
		g.debug = !g.debug
	}
	if c.Mute && g.muter != nil {
		g.muter.ToggleMute()
	}
	for _, in := range c.Inputs() {
		g.session.Input(in)
	}
	g.sched.Pump()
	return nil
}

// Layout fixes the logical screen to the world canvas; ebiten scales it to the window
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.session.Size()
	return int(w), int(h)
}

// Draw renders the current session state
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s := g.session
	_, h := s.Size()
	state := s.State()

	g.vs, g.is = g.vs[:0], g.is[:0]
	for _, f := range s.Formations() {
		g.vs, g.is = silhouetteMesh(f.Points, f.Side, h, colorFormation, g.vs, g.is)
	}
	ceiling, floor := s.Edges()
	g.vs, g.is = silhouetteMesh(ceiling.Points, world.Ceiling, h, colorTerrain, g.vs, g.is)
	g.vs, g.is = silhouetteMesh(floor.Points, world.Floor, h, colorTerrain, g.vs, g.is)
	if state != engine.StateStart {
		for _, o := range s.Obstacles() {
			g.vs, g.is = silhouetteMesh(o.Top, world.Ceiling, h, colorRock, g.vs, g.is)
			g.vs, g.is = silhouetteMesh(o.Bottom, world.Floor, h, colorRock, g.vs, g.is)
		}
	}
	g.flush(screen)

	if state != engine.StateStart {
		if pad := s.Helipad(); !pad.OffScreen() {
			vector.DrawFilledRect(screen, float32(pad.X), float32(pad.Y), float32(pad.W), float32(pad.H), colorHelipad, false)
			vector.DrawFilledRect(screen, float32(pad.X+pad.W/2-6), float32(pad.Y+2), 12, float32(pad.H-4), colorPadMark, false)
		}
		if state != engine.StateGameOver {
			g.drawCraft(screen, s.Craft())
		}
	}
	g.drawParticles(screen, s.Particles())
	g.drawHUD(screen, state)
}

// flush draws the batched silhouette triangles
func (g *Game) flush(screen *ebiten.Image) {
	if len(g.is) == 0 {
		return
	}
	screen.DrawTriangles(g.vs, g.is, g.white, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) drawCraft(screen *ebiten.Image, c *physics.Craft) {
	body, accent := craftPalette(c.Variant.Name)
	b := c.Bounds()
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)

	// Tail boom and fin
	vector.DrawFilledRect(screen, x-w*0.4, y+h*0.3, w*0.45, h*0.25, body, false)
	vector.DrawFilledRect(screen, x-w*0.45, y, w*0.1, h*0.55, accent, false)

	// Cabin with window at the nose
	vector.DrawFilledRect(screen, x, y, w, h, body, true)
	vector.DrawFilledRect(screen, x+w*0.6, y+h*0.15, w*0.3, h*0.4, colorWindow, true)

	// Mast and rotor; lifting spins the blade wider
	vector.DrawFilledRect(screen, x+w*0.45, y-4, 3, 4, colorRotor, false)
	span := w * 0.9
	if c.Lifting {
		span = w * 1.2
	}
	vector.DrawFilledRect(screen, x+w*0.5-span/2, y-6, span, 2, colorRotor, true)
}

func (g *Game) drawParticles(screen *ebiten.Image, particles []world.Particle) {
	for _, p := range particles {
		switch p.Kind {
		case world.Smoke:
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), fade(color.RGBA{200, 200, 200, 255}, p.Opacity), true)
		case world.Debris:
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size)/2, fade(color.RGBA{255, 140, 0, 255}, p.Opacity), true)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, state string) {
	s := g.session
	w, h := s.Size()
	mid := h / 2

	switch state {
	case engine.StateStart:
		g.drawText(screen, title, w/2, mid-50, 4, colorText, text.AlignCenter)
		g.drawText(screen, promptStart, w/2, mid+10, 2, colorText, text.AlignCenter)
		g.drawText(screen, fmt.Sprintf("craft: %s  [C] change", s.Craft().Variant.Name), w/2, mid+45, 1.5, colorTextDim, text.AlignCenter)
	case engine.StateTakeoff:
		g.drawText(screen, promptTake, w/2, mid-10, 2, colorText, text.AlignCenter)
	default:
		g.drawText(screen, fmt.Sprintf("Score: %d", s.Display()), 10, 10, 2, colorText, text.AlignStart)
		high := int(s.HighScore()) / parameter.ScoreDivisor
		g.drawText(screen, fmt.Sprintf("High Score: %d", high), w-10, 10, 2, colorText, text.AlignEnd)
	}

	if state == engine.StateGameOver {
		g.drawText(screen, promptOver, w/2, mid-60, 4, colorText, text.AlignCenter)
		prompt, clr := promptAgain, colorText
		if s.WaitingRelease() {
			prompt, clr = promptLetGo, colorTextDim
		}
		g.drawText(screen, prompt, w/2, mid-10, 2, clr, text.AlignCenter)
		g.drawStandings(screen, w/2, mid+25)
	}

	if g.debug {
		g.drawText(screen, strings.Join(g.reg.Snapshot(), "  "), 6, h-16, 1, colorHighlight, text.AlignStart)
	}
}

func (g *Game) drawStandings(screen *ebiten.Image, x, y float64) {
	if g.standings == nil {
		return
	}
	for i, e := range g.standings.Entries() {
		line := fmt.Sprintf("%d. %-3s %-8s %06d", i+1, e.Initials, e.Craft, e.Score)
		g.drawText(screen, line, x, y+float64(i)*20, 1.5, colorTextDim, text.AlignCenter)
	}
}

func (g *Game) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, str, g.face, op)
}
