package leaderboard

import (
	"log"
	"time"

	"github.com/lixenwraith/cave-copter/event"
)

const dateLayout = "2006-01-02"

// Recorder submits qualifying runs to a board under fixed initials
// It is registered on the event router for EventHighScore
type Recorder struct {
	board    *Board
	initials string
	now      func() time.Time

	// OnRecord, if set, is called after every successful submission
	OnRecord func(e Entry, rank int)
}

// NewRecorder creates a recorder; blank initials fall back to DefaultInitials
func NewRecorder(board *Board, initials string) *Recorder {
	initials = NormalizeInitials(initials)
	if initials == "" {
		initials = DefaultInitials
	}
	return &Recorder{board: board, initials: initials, now: time.Now}
}

// HandleEvent implements event.Handler
func (r *Recorder) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.HighScorePayload)
	if !ok {
		return
	}
	e := Entry{
		Initials: r.initials,
		Score:    p.Score,
		Craft:    p.Craft,
		Date:     r.now().Format(dateLayout),
	}
	rank, err := r.board.Submit(e)
	if err != nil {
		log.Printf("leaderboard: %v", err)
		return
	}
	if rank == 0 {
		return
	}
	log.Printf("leaderboard: %s %d on %s ranked #%d", e.Initials, e.Score, e.Craft, rank)
	if r.OnRecord != nil {
		r.OnRecord(e, rank)
	}
}

// EventTypes implements event.Handler
func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventHighScore}
}
