package fsm

import (
	"errors"
	"slices"
	"time"
)

// ErrNoGraph is returned by Init before a graph has been loaded
var ErrNoGraph = errors.New("fsm: no graph loaded")

// Trigger names an external stimulus; TriggerTick is fired by Update
type Trigger string

const TriggerTick Trigger = "Tick"

// GuardFunc gates a transition
type GuardFunc[T any] func(ctx T) bool

// ActionFunc runs a state side effect; args is the arg string from the graph, or nil
type ActionFunc[T any] func(ctx T, args any)

type action[T any] struct {
	fn   ActionFunc[T]
	args any
}

type transition[T any] struct {
	trigger Trigger
	target  string
	guard   GuardFunc[T] // nil passes
}

type state[T any] struct {
	name        string
	onEnter     []action[T]
	onUpdate    []action[T]
	onExit      []action[T]
	transitions []transition[T] // Evaluation order
}

// Machine is a flat state machine whose graph is loaded from TOML
// Guards and actions are registered by name before loading
// Not safe for concurrent use; the owner drives it from one goroutine
type Machine[T any] struct {
	states  map[string]*state[T]
	initial string

	current     *state[T]
	timeInState time.Duration

	guards  map[string]GuardFunc[T]
	actions map[string]ActionFunc[T]
}

// NewMachine creates a machine with empty registries
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		guards:  make(map[string]GuardFunc[T]),
		actions: make(map[string]ActionFunc[T]),
	}
}

func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guards[name] = fn
}

func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actions[name] = fn
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	s, ok := m.states[m.initial]
	if !ok {
		return ErrNoGraph
	}
	m.enter(ctx, s)
	return nil
}

// Update runs the current state's update actions, then fires TriggerTick
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.current == nil {
		return
	}
	m.timeInState += dt
	run(ctx, m.current.onUpdate)
	m.fire(ctx, TriggerTick)
}

// Fire offers trigger to the current state's transitions
// The first matching transition whose guard passes is taken; returns whether one was
func (m *Machine[T]) Fire(ctx T, trigger Trigger) bool {
	if m.current == nil {
		return false
	}
	return m.fire(ctx, trigger)
}

func (m *Machine[T]) fire(ctx T, trigger Trigger) bool {
	for _, tr := range m.current.transitions {
		if tr.trigger != trigger || (tr.guard != nil && !tr.guard(ctx)) {
			continue
		}
		if tr.target != m.current.name {
			run(ctx, m.current.onExit)
			m.enter(ctx, m.states[tr.target])
		}
		return true
	}
	return false
}

// enter switches before running enter actions so they observe the new state
func (m *Machine[T]) enter(ctx T, s *state[T]) {
	m.current = s
	m.timeInState = 0
	run(ctx, s.onEnter)
}

// Reset exits the current state and re-enters the initial one
func (m *Machine[T]) Reset(ctx T) error {
	if m.current != nil {
		run(ctx, m.current.onExit)
		m.current = nil
	}
	return m.Init(ctx)
}

// StateName returns the current state, "" before Init
func (m *Machine[T]) StateName() string {
	if m.current == nil {
		return ""
	}
	return m.current.name
}

// TimeInState returns the time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// States returns the loaded state names, sorted
func (m *Machine[T]) States() []string {
	names := make([]string, 0, len(m.states))
	for name := range m.states {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func run[T any](ctx T, actions []action[T]) {
	for _, a := range actions {
		a.fn(ctx, a.args)
	}
}
