package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/cave-copter/event"
	"github.com/lixenwraith/cave-copter/status"
)

func newTestScheduler(t *testing.T) (*Scheduler, *MockClock, *Session, *status.Registry) {
	t.Helper()
	clock := NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	reg := status.NewRegistry()
	q := event.NewEventQueue()
	s := newTestSession(t, q, reg, nil)
	sched := NewScheduler(clock, s, event.NewRouter(q), 60, reg)
	return sched, clock, s, reg
}

func TestSchedulerCarriesRemainder(t *testing.T) {
	sched, clock, s, reg := newTestScheduler(t)
	interval := sched.Interval()

	if n := sched.Pump(); n != 0 {
		t.Fatalf("Expected first pump to anchor only, got %d ticks", n)
	}

	// Half a tick: nothing due
	clock.Advance(interval / 2)
	if n := sched.Pump(); n != 0 {
		t.Errorf("Expected 0 ticks after half interval, got %d", n)
	}

	// Second half completes the tick carried from before
	clock.Advance(interval / 2)
	if n := sched.Pump(); n != 1 {
		t.Errorf("Expected 1 tick from carried remainder, got %d", n)
	}

	// 2.5 intervals: two ticks now, the half carries
	clock.Advance(interval*2 + interval/2)
	if n := sched.Pump(); n != 2 {
		t.Errorf("Expected 2 ticks, got %d", n)
	}
	clock.Advance(interval / 2)
	if n := sched.Pump(); n != 1 {
		t.Errorf("Expected carried half to complete a tick, got %d", n)
	}

	if s.Ticks() != 4 {
		t.Errorf("Expected 4 session ticks, got %d", s.Ticks())
	}
	if got := reg.Ints.Get(status.KeyEngineTicks).Load(); got != 4 {
		t.Errorf("Expected engine.ticks 4, got %d", got)
	}
}

func TestSchedulerCapsCatchUp(t *testing.T) {
	sched, clock, s, reg := newTestScheduler(t)
	interval := sched.Interval()
	sched.Pump()

	clock.Advance(interval*10 + interval/4)
	n := sched.Pump()
	if n != 3 {
		t.Fatalf("Expected catch-up capped at 3, got %d", n)
	}
	if got := reg.Ints.Get(status.KeyEngineDroppedTicks).Load(); got != 7 {
		t.Errorf("Expected 7 dropped ticks, got %d", got)
	}

	// Resynchronised: only the sub-tick remainder survives
	clock.Advance(interval / 2)
	if n := sched.Pump(); n != 0 {
		t.Errorf("Expected no backlog after resync, got %d", n)
	}
	if s.Ticks() != 3 {
		t.Errorf("Expected 3 session ticks, got %d", s.Ticks())
	}
}

func TestSchedulerDispatchesEvents(t *testing.T) {
	clock := NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	reg := status.NewRegistry()
	q := event.NewEventQueue()
	router := event.NewRouter(q)

	var states []string
	router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventStateChanged},
		Fn: func(ev event.GameEvent) {
			states = append(states, ev.Payload.(*event.StateChangePayload).To)
		},
	})

	s := newTestSession(t, q, reg, nil)
	sched := NewScheduler(clock, s, router, 60, reg)

	sched.Pump()
	s.Input(Confirm)
	clock.Advance(sched.Interval())
	sched.Pump()

	if len(states) != 2 || states[0] != StateStart || states[1] != StateTakeoff {
		t.Errorf("Expected [start takeoff], got %v", states)
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	sched, _, s, _ := newTestScheduler(t)

	inputs := make(chan Input, 1)
	inputs <- Confirm

	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	done := make(chan error, 1)
	go func() {
		done <- sched.Run(ctx, inputs, func() { frames++ })
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// MockClock never advances, so no ticks ran and the input stays queued
	if frames != 0 || s.Ticks() != 0 {
		t.Errorf("Expected no frames with a frozen clock, got %d frames %d ticks", frames, s.Ticks())
	}
	if len(s.pending) != 1 {
		t.Errorf("Expected queued input, got %d", len(s.pending))
	}
}
