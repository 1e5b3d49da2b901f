package parameter

// Edge Strips
const (
	// EdgeSegmentWidth is the fixed horizontal spacing of edge strip points
	EdgeSegmentWidth = 50.0

	// EdgeLookaheadSegments is the extra segments materialised beyond the canvas on creation
	EdgeLookaheadSegments = 2

	// EdgeMinHeight and EdgeHeightRange bound edge point depth from the canvas edge
	EdgeMinHeight   = 5.0
	EdgeHeightRange = 10.0
)

// Background Formations
const (
	FormationMinWidth    = 80.0
	FormationWidthRange  = 120.0
	FormationMinHeight   = 60.0
	FormationHeightRange = 120.0

	// FormationMinSegments and FormationSegmentRange give 4 to 6 segments
	FormationMinSegments  = 4
	FormationSegmentRange = 3

	// FormationMinHeightRatio keeps formation heights consistent
	FormationMinHeightRatio = 0.6

	// FormationEndTaper scales the first and last point
	FormationEndTaper = 0.2

	// FormationParallax is the fraction of scroll speed formations move at
	FormationParallax = 0.3
)
