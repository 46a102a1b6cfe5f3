package parameter

// Fixed simulation timestep. Ticks are driven externally by the frame
// timer; game time is always tick * DT.
const DT = 1.0 / 60.0

// World-space view size of one cell. The renderer maps this to terminal
// cells; the simulation never sees screen coordinates.
const (
	ViewWidth  = 640.0
	ViewHeight = 480.0
)

// Ship handling
const (
	TurnRate    = 2.0  // rad/s
	ThrustAccel = 96.0 // units/s^2 along heading
	MaxVel      = 25.0 // safe landing speed ceiling
	ShipSize    = 16.0
	CarSize     = 8.0
)

// Train coupling
const (
	LinkLength = 24.0 // rigid chain link distance
)

// Landing classification
const (
	FlatnessThreshold = 0.9 // normal·gravity dot below this explodes
	BounceDivisor     = 5.0 // excess-margin divisor for the score multiplier
)

// Gravity field strength range, drawn per cell
const (
	GravityMin = 16.0
	GravityMax = 32.0
)
