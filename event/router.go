package event

// Handler observes session events; audio and the leaderboard recorder are the built-in ones
type Handler interface {
	// HandleEvent runs on the scheduler goroutine right after a pump
	HandleEvent(ev GameEvent)

	// EventTypes is the subscription list, read once at Register
	EventTypes() []EventType
}

// HandlerFunc subscribes a plain function to Types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Router drains an EventQueue into subscribed handlers
// Not safe for concurrent use; the scheduler goroutine owns it
type Router struct {
	subs  map[EventType][]Handler
	queue *EventQueue
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{subs: make(map[EventType][]Handler), queue: queue}
}

// Register subscribes handler to each type it lists
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.subs[t] = append(r.subs[t], handler)
	}
}

// DispatchAll delivers pending events oldest first and reports how many were drained
// Every subscriber sees an event before the next one is delivered, in subscription order
func (r *Router) DispatchAll() int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		for _, h := range r.subs[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(pending)
}

func (r *Router) HasHandlers(t EventType) bool { return len(r.subs[t]) > 0 }

func (r *Router) HandlerCount(t EventType) int { return len(r.subs[t]) }
