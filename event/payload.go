package event

// MilestonePayload carries the displayed-score threshold crossed
type MilestonePayload struct {
	Milestone int
}

// CollisionPayload carries the craft position at impact
type CollisionPayload struct {
	X, Y float64
}

// ScorePayload carries the raw (unscaled) score
type ScorePayload struct {
	Raw float64
}

// Display returns the score as shown to the player
func (p *ScorePayload) Display() int {
	return int(p.Raw) / 10
}

// StateChangePayload carries FSM state names
type StateChangePayload struct {
	From string
	To   string
}

// HighScorePayload carries a qualifying displayed score
type HighScorePayload struct {
	Score int
	Craft string
	Rank  int // 1-based leaderboard position
}

// ObstacleSpawnedPayload carries spawn difficulty
type ObstacleSpawnedPayload struct {
	Level int
	Gap   float64
}
