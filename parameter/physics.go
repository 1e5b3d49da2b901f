package parameter

// Craft Physics
const (
	// LiftScale converts a variant's lift force into per-tick velocity change
	LiftScale = 0.2
)

// Display Profiles
const (
	DesktopWidth       = 800.0
	DesktopHeight      = 400.0
	DesktopScrollSpeed = 9.0

	MobileWidth       = 600.0
	MobileHeight      = 600.0
	MobileScrollSpeed = 8.0
)
