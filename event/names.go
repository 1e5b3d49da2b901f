package event

var typeNames = map[EventType]string{
	EventLiftStart:        "EventLiftStart",
	EventLiftStop:         "EventLiftStop",
	EventMilestoneReached: "EventMilestoneReached",
	EventCollision:        "EventCollision",
	EventScoreChanged:     "EventScoreChanged",
	EventStateChanged:     "EventStateChanged",
	EventHighScore:        "EventHighScore",
	EventObstacleSpawned:  "EventObstacleSpawned",
}
