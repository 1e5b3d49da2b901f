package engine

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/lixenwraith/cave-copter/event"
	"github.com/lixenwraith/cave-copter/fsm"
)

//go:embed session.toml
var sessionGraph []byte

// Session state names
const (
	StateStart    = "start"
	StateTakeoff  = "takeoff"
	StatePlaying  = "playing"
	StateGameOver = "gameover"
)

const (
	triggerConfirm fsm.Trigger = "Confirm"
)

func newSessionMachine() (*fsm.Machine[*Session], error) {
	m := fsm.NewMachine[*Session]()

	m.RegisterAction("ResetWorld", func(s *Session, _ any) { s.resetWorld() })
	m.RegisterAction("Drift", func(s *Session, _ any) { s.drift() })
	m.RegisterAction("PlaceOnPad", func(s *Session, _ any) { s.placeOnPad() })
	m.RegisterAction("Launch", func(s *Session, _ any) { s.launch() })
	m.RegisterAction("Simulate", func(s *Session, _ any) { s.simulate() })
	m.RegisterAction("Wreck", func(s *Session, _ any) { s.wreck() })
	m.RegisterAction("Announce", func(s *Session, _ any) { s.announce() })

	m.RegisterGuard("Crashed", func(s *Session) bool { return s.crashed })
	m.RegisterGuard("Released", func(s *Session) bool { return !s.waitRelease })

	if err := m.LoadConfig(sessionGraph); err != nil {
		return nil, fmt.Errorf("session graph: %w", err)
	}
	return m, nil
}

// announce publishes the transition that just completed
func (s *Session) announce() {
	to := s.machine.StateName()
	from := s.lastState
	s.lastState = to
	s.statState.Store(to)

	if from == "" {
		log.Printf("session: enter %s", to)
	} else {
		log.Printf("session: %s -> %s", from, to)
	}
	s.emit(event.EventStateChanged, &event.StateChangePayload{From: from, To: to})
}
