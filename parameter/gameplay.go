package parameter

// Obstacle Sizing
const (
	// ObstacleMinWidth is the narrowest obstacle in world units
	ObstacleMinWidth = 100.0

	// ObstacleWidthRange is added to ObstacleMinWidth scaled by a uniform draw
	ObstacleWidthRange = 60.0

	// ObstacleSegments is the coarse segment count of each silhouette before midpoints
	ObstacleSegments = 8

	// ObstacleTipClearance keeps silhouette tips this far from the gap edge
	ObstacleTipClearance = 20.0

	// ObstacleMinHeightRatio is the lowest height of a silhouette point as a fraction of its extent
	ObstacleMinHeightRatio = 0.4

	// ObstacleMidpointJitter is the full width of the midpoint perturbation (±7.5)
	ObstacleMidpointJitter = 15.0
)

// Gap Difficulty
const (
	BaseMinGap = 130.0
	BaseMaxGap = 180.0

	// GapFloorMin and GapFloorMax bound the reduced gap range before hard mode
	GapFloorMin = 40.0
	GapFloorMax = 70.0

	// GapReductionPerLevel shrinks both bounds per difficulty level
	GapReductionPerLevel = 30.0

	// GapReductionMax caps the total reduction
	GapReductionMax = 40.0

	// DifficultyStep is the displayed score per difficulty level
	DifficultyStep = 250

	// HardModeScore is the displayed score above which the gap range is halved
	HardModeScore = 1000

	// HardModeFactor scales the gap bounds in hard mode
	HardModeFactor = 0.5

	// GapSafeZone is the margin at each canvas edge excluded from gap placement
	GapSafeZone = 80.0

	// GapSections is the number of vertical bands the playable height is split into
	GapSections = 3
)

// Session Flow
const (
	// ObstacleTargetDistance is the world distance between consecutive obstacles
	ObstacleTargetDistance = 400.0

	// CraftStartX is the fixed horizontal position of the craft
	CraftStartX = 130.0

	// LaunchPadOffset positions the craft this far above the canvas bottom on takeoff
	LaunchPadOffset = 50.0

	// ScoreDivisor converts raw score to displayed score
	ScoreDivisor = 10

	// MilestoneStep is the displayed score between difficulty notifications
	MilestoneStep = 250

	// MilestoneMax is the last displayed score that fires a notification
	MilestoneMax = 1000

	// DemoSpeedFactor scales scroll speed for the start screen drift
	DemoSpeedFactor = 0.5

	// DemoFormations is the number of formations scattered on a fresh start screen
	DemoFormations = 3
)

// Helipad
const (
	HelipadWidth  = 120.0
	HelipadHeight = 10.0
	HelipadX      = 90.0

	// HelipadLift is the clearance between pad bottom and the canvas floor
	HelipadLift = 20.0
)
