package event

import (
	"sync/atomic"

	"github.com/lixenwraith/cave-copter/parameter"
)

// slot is one ring cell; seq holds write index + 1 once the event is visible
type slot struct {
	ev  GameEvent
	seq atomic.Uint64
}

// EventQueue is a fixed ring of session events
// Any goroutine may Emit; only the scheduler goroutine Consumes
// When producers lap the consumer the oldest events are lost
type EventQueue struct {
	slots [parameter.EventQueueSize]slot
	head  atomic.Uint64 // Next index to read
	tail  atomic.Uint64 // Next index to claim
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next index and publishes event into it
func (eq *EventQueue) Push(event GameEvent) {
	idx := eq.tail.Add(1) - 1
	s := &eq.slots[idx&parameter.EventBufferMask]
	s.ev = event
	s.seq.Store(idx + 1)
}

// Emit pushes an event built from its parts
func (eq *EventQueue) Emit(t EventType, payload any, tick uint64) {
	eq.Push(GameEvent{Type: t, Payload: payload, Tick: tick})
}

// Consume drains published events in FIFO order
// Reading stops at the first slot whose writer has not finished; it is picked up next call
func (eq *EventQueue) Consume() []GameEvent {
	head, tail := eq.head.Load(), eq.tail.Load()
	if tail-head > parameter.EventQueueSize {
		head = tail - parameter.EventQueueSize
	}
	if head == tail {
		eq.head.Store(head)
		return nil
	}

	var out []GameEvent
	for i := head; i < tail; i++ {
		s := &eq.slots[i&parameter.EventBufferMask]
		if s.seq.Load() != i+1 {
			break
		}
		out = append(out, s.ev)
	}
	eq.head.Store(head + uint64(len(out)))
	return out
}

// Len returns the approximate number of unread events
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	return int(min(n, parameter.EventQueueSize))
}
