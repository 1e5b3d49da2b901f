package parameter

// Smoke Trail
const (
	// SmokeEmitTicks is the number of ticks between puffs
	SmokeEmitTicks = 3

	// SmokeOffsetX/Y place the exhaust relative to the craft's top-left
	SmokeOffsetX = -15.0
	SmokeOffsetY = 15.0

	SmokeMinSize    = 3.0
	SmokeSizeRange  = 4.0
	SmokeDriftX     = -1.0
	SmokeDriftY     = 0.5 // Full width of the vertical drift draw
	SmokeOpacity    = 0.8
	SmokeFade       = 0.008
	SmokeShrink     = 0.03
	SmokeMinSizeCut = 0.2
)

// Explosion Burst
const (
	ExplosionParticles  = 30
	ExplosionMinSpeed   = 2.0
	ExplosionSpeedRange = 2.0
	ExplosionMinSize    = 5.0
	ExplosionSizeRange  = 5.0
	ExplosionGravity    = 0.2
	ExplosionFade       = 0.02
	ExplosionDecay      = 0.95 // Size multiplier per tick
)
