package fsm

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Graph is the TOML form of a machine:
//
//	initial = "start"
//	[states.start]
//	on_enter = [{ action = "ResetWorld" }]
//	transitions = [{ trigger = "Confirm", target = "takeoff", guard = "Ready" }]
type Graph struct {
	Initial string                 `toml:"initial"`
	States  map[string]StateConfig `toml:"states"`
}

type StateConfig struct {
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnUpdate    []ActionConfig     `toml:"on_update"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

type TransitionConfig struct {
	Trigger string `toml:"trigger"` // Trigger name or "Tick"
	Target  string `toml:"target"`
	Guard   string `toml:"guard"`
}

type ActionConfig struct {
	Action string `toml:"action"`
	Arg    string `toml:"arg"`
}

// LoadConfig decodes a graph and replaces the machine's states
// Every referenced action, guard and target must resolve; the machine is left untouched on error
func (m *Machine[T]) LoadConfig(data []byte) error {
	var g Graph
	if _, err := toml.Decode(string(data), &g); err != nil {
		return fmt.Errorf("decode graph: %w", err)
	}
	if _, ok := g.States[g.Initial]; !ok {
		return fmt.Errorf("initial state %q not defined", g.Initial)
	}

	states := make(map[string]*state[T], len(g.States))
	for name, sc := range g.States {
		s := &state[T]{name: name}
		var err error
		if s.onEnter, err = m.compileActions(sc.OnEnter); err != nil {
			return fmt.Errorf("state %q on_enter: %w", name, err)
		}
		if s.onUpdate, err = m.compileActions(sc.OnUpdate); err != nil {
			return fmt.Errorf("state %q on_update: %w", name, err)
		}
		if s.onExit, err = m.compileActions(sc.OnExit); err != nil {
			return fmt.Errorf("state %q on_exit: %w", name, err)
		}
		for _, tc := range sc.Transitions {
			tr, err := m.compileTransition(tc, g.States)
			if err != nil {
				return fmt.Errorf("state %q: %w", name, err)
			}
			s.transitions = append(s.transitions, tr)
		}
		states[name] = s
	}

	m.states = states
	m.initial = g.Initial
	m.current = nil
	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]action[T], error) {
	out := make([]action[T], 0, len(configs))
	for _, c := range configs {
		fn, ok := m.actions[c.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", c.Action)
		}
		a := action[T]{fn: fn}
		if c.Arg != "" {
			a.args = c.Arg
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *Machine[T]) compileTransition(c TransitionConfig, states map[string]StateConfig) (transition[T], error) {
	if c.Trigger == "" {
		return transition[T]{}, fmt.Errorf("transition to %q has no trigger", c.Target)
	}
	if _, ok := states[c.Target]; !ok {
		return transition[T]{}, fmt.Errorf("unknown target %q", c.Target)
	}
	tr := transition[T]{trigger: Trigger(c.Trigger), target: c.Target}
	if c.Guard != "" {
		g, ok := m.guards[c.Guard]
		if !ok {
			return transition[T]{}, fmt.Errorf("unknown guard %q", c.Guard)
		}
		tr.guard = g
	}
	return tr, nil
}
