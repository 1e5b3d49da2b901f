package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cave-copter/event"
	"github.com/lixenwraith/cave-copter/parameter"
	"github.com/lixenwraith/cave-copter/status"
)

// Scheduler gates session ticks on a clock with an accumulator
// Elapsed time that does not fill a whole tick carries to the next pump;
// backlog beyond MaxCatchUpTicks is dropped and the accumulator resynchronised
type Scheduler struct {
	clock    Clock
	session  *Session
	router   *event.Router
	interval time.Duration
	maxTicks int

	started bool
	last    time.Time
	acc     time.Duration

	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewScheduler creates a scheduler ticking session at fps
func NewScheduler(clock Clock, session *Session, router *event.Router, fps int, reg *status.Registry) *Scheduler {
	if fps <= 0 {
		fps = parameter.TargetFPS
	}
	return &Scheduler{
		clock:       clock,
		session:     session,
		router:      router,
		interval:    time.Second / time.Duration(fps),
		maxTicks:    parameter.MaxCatchUpTicks,
		statTicks:   reg.Ints.Get(status.KeyEngineTicks),
		statDropped: reg.Ints.Get(status.KeyEngineDroppedTicks),
	}
}

// Interval returns the fixed tick length
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Pump runs every tick that is due, then dispatches the events they produced
// The first call only anchors the clock. Returns the number of ticks run
func (s *Scheduler) Pump() int {
	now := s.clock.Now()
	if !s.started {
		s.started = true
		s.last = now
		s.router.DispatchAll()
		return 0
	}

	if elapsed := now.Sub(s.last); elapsed > 0 {
		s.acc += elapsed
	}
	s.last = now

	n := int(s.acc / s.interval)
	if n > s.maxTicks {
		s.statDropped.Add(int64(n - s.maxTicks))
		n = s.maxTicks
		s.acc %= s.interval
	} else {
		s.acc -= time.Duration(n) * s.interval
	}

	for i := 0; i < n; i++ {
		s.session.Tick()
	}
	s.statTicks.Add(int64(n))

	s.router.DispatchAll()
	return n
}

// untilNext returns the wait before the next tick is due
func (s *Scheduler) untilNext() time.Duration {
	d := s.interval - s.acc
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

// Run interleaves inputs and ticks on the calling goroutine until ctx ends
// frame is called after every pump that ran at least one tick
func (s *Scheduler) Run(ctx context.Context, inputs <-chan Input, frame func()) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-inputs:
			if !ok {
				inputs = nil
				continue
			}
			s.session.Input(in)

		case <-timer.C:
			if s.Pump() > 0 && frame != nil {
				frame()
			}
			timer.Reset(s.untilNext())
		}
	}
}
