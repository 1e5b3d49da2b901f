package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cave-copter/engine"
)

// debugToggler is the part of the renderer the input goroutine may touch
type debugToggler interface {
	ToggleDebug() bool
	Resize(w, h int)
}

// frontend bundles what key handling acts on besides the session
type frontend struct {
	hold     *engine.HoldTracker
	renderer debugToggler
	mute     func() bool
	now      func() time.Time

	mouseDown bool
}

// translateInput turns tcell events into session inputs until ctx ends
// Terminals report no key release, so held keys go through the hold tracker
// Mouse buttons do report release and bypass it
func translateInput(ctx context.Context, quit context.CancelFunc, events <-chan tcell.Event, inputs chan<- engine.Input, f frontend) {
	if f.now == nil {
		f.now = time.Now
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	send := func(ins []engine.Input) {
		for _, in := range ins {
			select {
			case inputs <- in:
			case <-ctx.Done():
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			ins, stop := f.handle(ev)
			if stop {
				quit()
				return
			}
			send(ins)
		case <-ticker.C:
			send(f.hold.Poll(f.now()))
		}
	}
}

// handle maps one event to inputs; stop reports a quit request
func (f *frontend) handle(ev tcell.Event) (ins []engine.Input, stop bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, true
		case tcell.KeyUp:
			return f.hold.Press(f.now()), false
		case tcell.KeyF3:
			f.renderer.ToggleDebug()
			return nil, false
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return f.hold.Press(f.now()), false
			case 'q', 'Q':
				return nil, true
			case 'c', 'C':
				return []engine.Input{engine.CycleCraft}, false
			case 'm', 'M':
				if f.mute != nil {
					f.mute()
				}
				return nil, false
			}
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !f.mouseDown:
			f.mouseDown = true
			return []engine.Input{engine.Confirm, engine.LiftStart}, false
		case !down && f.mouseDown:
			f.mouseDown = false
			return []engine.Input{engine.LiftStop}, false
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		f.renderer.Resize(w, h)
	}
	return nil, false
}
