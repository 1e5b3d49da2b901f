package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/lixenwraith/cave-copter/config"
)

var (
	ErrDuplicate = errors.New("service already registered")
	ErrCycle     = errors.New("circular service dependency")
	ErrMissing   = errors.New("dependency not registered")
)

// Hub owns the infrastructure services and drives their lifecycle in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string // Resolved by InitAll
	running  []string // Started, in start order
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds svc; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.services[name] = svc
	h.order = nil
	return nil
}

// Get looks a service up by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet returns the named service as T
// Panics when it is missing or of another type; lookups happen once at assembly
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic("service: no " + name + " registered")
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service: %s is %T", name, svc))
	}
	return typed
}

// InitAll resolves the dependency order and initializes every service
// A failure stops the already-initialized services, newest first
func (h *Hub) InitAll(cfg *config.Config) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolve()
	if err != nil {
		return err
	}
	h.order = order

	for i, name := range order {
		if err := h.services[name].Init(cfg); err != nil {
			h.stop(order[:i])
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	return nil
}

// StartAll starts services in dependency order
// A failure stops the ones already started, newest first
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			h.stop(h.order[:i])
			h.running = nil
			return fmt.Errorf("start %s: %w", name, err)
		}
	}
	h.running = slices.Clone(h.order)
	return nil
}

// StopAll stops every running service in reverse start order
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stop(h.running)
	h.running = nil
}

// stop calls Stop on names back to front, logging failures
func (h *Hub) stop(names []string) {
	for _, name := range slices.Backward(names) {
		if err := h.services[name].Stop(); err != nil {
			log.Printf("service %s stop: %v", name, err)
		}
	}
}

// Order returns the resolved init order, nil before InitAll
func (h *Hub) Order() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.order)
}

// Names returns all registered service names, sorted
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.names()
}

func (h *Hub) names() []string {
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// resolve orders services so every dependency precedes its dependents
// Depth-first over names in sorted order, so the result is stable across runs
func (h *Hub) resolve() ([]string, error) {
	const (
		unseen = iota
		visiting
		done
	)
	mark := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))

	var visit func(name string) error
	visit = func(name string) error {
		switch mark[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w at %s", ErrCycle, name)
		}
		mark[name] = visiting

		deps := slices.Clone(h.services[name].Dependencies())
		slices.Sort(deps)
		for _, dep := range deps {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("%w: %s needs %s", ErrMissing, name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		mark[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range h.names() {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
