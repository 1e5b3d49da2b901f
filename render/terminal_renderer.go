package render

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/geometry"
	"github.com/lixenwraith/cave-copter/leaderboard"
	"github.com/lixenwraith/cave-copter/parameter"
	"github.com/lixenwraith/cave-copter/physics"
	"github.com/lixenwraith/cave-copter/status"
	"github.com/lixenwraith/cave-copter/world"
)

const (
	title        = "CAVE COPTER"
	promptStart  = "Press Space to Start"
	promptTakeof = "Press Space to Take Off"
	promptOver   = "Game Over!"
	promptAgain  = "Press Space to Restart"
	promptLetGo  = "Release to continue"
)

// Standings supplies leaderboard rows for the game over screen
type Standings interface {
	Entries() []leaderboard.Entry
}

// TerminalRenderer draws a session onto a tcell screen
// The whole canvas is scaled into the screen; row 0 carries the HUD
type TerminalRenderer struct {
	screen tcell.Screen

	mu        sync.Mutex // Guards the grid size and debug flag against the input goroutine
	width     int
	height    int
	standings Standings
	debug     bool
	reg       *status.Registry

	frames    int
	fpsStart  time.Time
	statFPS   *status.AtomicFloat
	lastRank  atomic.Int64
	lastScore atomic.Int64
}

// NewTerminalRenderer creates a renderer sized to the current screen
// standings may be nil
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry, standings Standings, debug bool) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:    screen,
		width:     w,
		height:    h,
		standings: standings,
		debug:     debug,
		reg:       reg,
		statFPS:   reg.Floats.Get(status.KeyRenderFPS),
	}
}

// Resize updates the cell grid after a terminal resize
func (r *TerminalRenderer) Resize(w, h int) {
	r.mu.Lock()
	r.width, r.height = w, h
	r.mu.Unlock()
	r.screen.Sync()
}

// SetDebug toggles the metrics line
func (r *TerminalRenderer) SetDebug(on bool) {
	r.mu.Lock()
	r.debug = on
	r.mu.Unlock()
}

// ToggleDebug flips the metrics line and returns the new state
func (r *TerminalRenderer) ToggleDebug() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = !r.debug
	return r.debug
}

// MarkRecord highlights a fresh leaderboard entry on the game over screen
func (r *TerminalRenderer) MarkRecord(score, rank int) {
	r.lastScore.Store(int64(score))
	r.lastRank.Store(int64(rank))
}

// Viewport returns the current world to cell mapping for s
func (r *TerminalRenderer) Viewport(s *engine.Session) Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport(s)
}

func (r *TerminalRenderer) viewport(s *engine.Session) Viewport {
	w, h := s.Size()
	return NewViewport(w, h, r.width, r.height)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(s *engine.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countFrame(time.Now())

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	vp := r.viewport(s)
	state := s.State()

	for _, f := range s.Formations() {
		r.drawSilhouette(vp, f.Points, f.Side, '▓', defaultStyle.Foreground(RgbFormation))
	}
	ceiling, floor := s.Edges()
	r.drawSilhouette(vp, ceiling.Points, world.Ceiling, '█', defaultStyle.Foreground(RgbTerrain))
	r.drawSilhouette(vp, floor.Points, world.Floor, '█', defaultStyle.Foreground(RgbTerrain))

	if state != engine.StateStart {
		if pad := s.Helipad(); !pad.OffScreen() {
			r.drawHelipad(vp, pad, defaultStyle)
		}
		for _, o := range s.Obstacles() {
			r.drawSilhouette(vp, o.Top, world.Ceiling, '█', defaultStyle.Foreground(RgbRock))
			r.drawSilhouette(vp, o.Bottom, world.Floor, '█', defaultStyle.Foreground(RgbRock))
		}
		r.drawCraft(vp, s.Craft(), state == engine.StateGameOver, defaultStyle)
	}
	r.drawParticles(vp, s.Particles(), defaultStyle)

	r.drawHUD(s, state, defaultStyle)
	if r.debug {
		r.drawDebugLine(defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) countFrame(now time.Time) {
	if r.fpsStart.IsZero() {
		r.fpsStart = now
	}
	r.frames++
	if elapsed := now.Sub(r.fpsStart); elapsed >= time.Second {
		r.statFPS.Set(float64(r.frames) / elapsed.Seconds())
		r.frames = 0
		r.fpsStart = now
	}
}

// drawSilhouette fills every cell between the silhouette and its canvas edge
func (r *TerminalRenderer) drawSilhouette(vp Viewport, points []geometry.Point, side world.Side, ch rune, style tcell.Style) {
	if len(points) == 0 {
		return
	}
	c0, _ := vp.Cell(points[0].X, 0)
	c1, _ := vp.Cell(points[len(points)-1].X, 0)
	c0, c1 = max(c0, 0), min(c1, vp.Cols-1)

	for col := c0; col <= c1; col++ {
		y, ok := Sample(points, vp.CenterX(col))
		if !ok {
			continue
		}
		_, edge := vp.Cell(0, y)
		if side == world.Ceiling {
			for row := 0; row < min(edge, vp.Rows); row++ {
				r.screen.SetContent(col, row, ch, nil, style)
			}
		} else {
			for row := max(edge+1, 0); row < vp.Rows; row++ {
				r.screen.SetContent(col, row, ch, nil, style)
			}
			// Partial cell at the rim
			if edge >= 0 && edge < vp.Rows {
				r.screen.SetContent(col, edge, '▄', nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawHelipad(vp Viewport, pad *world.Helipad, defaultStyle tcell.Style) {
	c0, r0, c1, _, ok := vp.CellRect(pad.Rect)
	if !ok {
		return
	}
	padStyle := defaultStyle.Foreground(RgbHelipad)
	markStyle := defaultStyle.Foreground(RgbPadMark)
	mid := (c0 + c1) / 2
	for col := c0; col <= c1; col++ {
		if col == mid {
			r.screen.SetContent(col, r0, 'H', nil, markStyle)
			continue
		}
		r.screen.SetContent(col, r0, '▀', nil, padStyle)
	}
}

func (r *TerminalRenderer) drawCraft(vp Viewport, c *physics.Craft, wrecked bool, defaultStyle tcell.Style) {
	if wrecked {
		return // Debris takes over
	}
	c0, r0, c1, r1, ok := vp.CellRect(c.Bounds())
	if !ok {
		return
	}
	body, accent := CraftColors(c.Variant.Name)
	bodyStyle := defaultStyle.Foreground(body)

	// Rotor sits on the row above the body when there is room
	if r0 > 0 {
		rotor := '─'
		if c.Lifting {
			rotor = '═'
		}
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, r0-1, rotor, nil, defaultStyle.Foreground(RgbTextDim))
		}
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, '█', nil, bodyStyle)
		}
	}
	// Canopy at the nose
	r.screen.SetContent(c1, r0, '▌', nil, bodyStyle.Background(accent))
}

func (r *TerminalRenderer) drawParticles(vp Viewport, particles []world.Particle, defaultStyle tcell.Style) {
	for _, p := range particles {
		col, row := vp.Cell(p.X, p.Y)
		if col < 0 || col >= vp.Cols || row < 0 || row >= vp.Rows {
			continue
		}
		switch p.Kind {
		case world.Smoke:
			ch := '░'
			if p.Opacity > 0.5 {
				ch = '▒'
			}
			r.screen.SetContent(col, row, ch, nil, defaultStyle.Foreground(Fade(200, 200, 200, p.Opacity)))
		case world.Debris:
			ch := '*'
			if p.Size < 3 {
				ch = '·'
			}
			r.screen.SetContent(col, row, ch, nil, defaultStyle.Foreground(Fade(255, 140, 0, p.Opacity)))
		}
	}
}

func (r *TerminalRenderer) drawHUD(s *engine.Session, state string, defaultStyle tcell.Style) {
	textStyle := defaultStyle.Foreground(RgbText)
	dimStyle := defaultStyle.Foreground(RgbTextDim)
	mid := r.height / 2

	switch state {
	case engine.StateStart:
		r.drawCentered(mid-2, title, textStyle.Bold(true))
		r.drawCentered(mid, promptStart, textStyle)
		r.drawCentered(mid+2, fmt.Sprintf("craft: %s  [c] change", s.Craft().Variant.Name), dimStyle)
		return
	case engine.StateTakeoff:
		r.drawCentered(mid, promptTakeof, textStyle)
		return
	}

	score := fmt.Sprintf(" Score: %d", s.Display())
	high := fmt.Sprintf("High Score: %d ", int(s.HighScore())/parameter.ScoreDivisor)
	r.drawText(0, 0, score, textStyle)
	r.drawText(r.width-len(high), 0, high, textStyle)

	if state != engine.StateGameOver {
		return
	}
	r.drawCentered(mid-2, promptOver, textStyle.Bold(true))
	if s.WaitingRelease() {
		r.drawCentered(mid, promptLetGo, dimStyle)
	} else {
		r.drawCentered(mid, promptAgain, textStyle)
	}
	r.drawStandings(mid+2, defaultStyle)
}

func (r *TerminalRenderer) drawStandings(y int, defaultStyle tcell.Style) {
	if r.standings == nil {
		return
	}
	entries := r.standings.Entries()
	if len(entries) == 0 {
		return
	}
	rank := int(r.lastRank.Load())
	score := int(r.lastScore.Load())
	for i, e := range entries {
		if y+i >= r.height-1 {
			return
		}
		style := defaultStyle.Foreground(RgbTextDim)
		if i+1 == rank && e.Score == score {
			style = defaultStyle.Foreground(RgbHighlight)
		}
		r.drawCentered(y+i, fmt.Sprintf("%d. %-3s %-8s %06d", i+1, e.Initials, e.Craft, e.Score), style)
	}
}

func (r *TerminalRenderer) drawDebugLine(defaultStyle tcell.Style) {
	line := strings.Join(r.reg.Snapshot(), " ")
	if len(line) > r.width {
		line = line[:r.width]
	}
	r.drawText(0, r.height-1, line, defaultStyle.Foreground(RgbDebug))
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	r.drawText((r.width-len([]rune(text)))/2, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for i, ch := range []rune(text) {
		if x+i >= 0 && x+i < r.width {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}
