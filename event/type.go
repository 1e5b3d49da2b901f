package event

// EventType represents the type of session output event
type EventType int

const (
	// EventLiftStart signals the rotor spooling up
	// Trigger: Lift input applied while playing | Payload: nil
	EventLiftStart EventType = iota + 1

	// EventLiftStop signals the rotor releasing lift
	// Trigger: Lift input released, crash | Payload: nil
	EventLiftStop

	// EventMilestoneReached marks a difficulty step
	// Trigger: Displayed score crossing a multiple of 250, up to 1000 | Payload: *MilestonePayload
	EventMilestoneReached

	// EventCollision reports the crash position
	// Trigger: Boundary or obstacle hit | Payload: *CollisionPayload
	EventCollision

	// EventScoreChanged reports the raw score after accumulation
	// Trigger: Every playing tick | Payload: *ScorePayload
	EventScoreChanged

	// EventStateChanged reports a session state transition
	// Trigger: Session FSM | Payload: *StateChangePayload
	EventStateChanged

	// EventHighScore reports a leaderboard-qualifying run
	// Trigger: Game over with a top-N score | Payload: *HighScorePayload
	EventHighScore

	// EventObstacleSpawned reports a new obstacle entering from the right
	// Trigger: Obstacle timer | Payload: *ObstacleSpawnedPayload
	EventObstacleSpawned
)

// GameEvent is a single queued event
// Tick is the session tick number at emission
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

// String returns the event type name
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "EventUnknown"
}
