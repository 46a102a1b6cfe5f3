package component

import (
	"github.com/calwren/lifeline/vmath"
)

// PositionComponent is world-space position plus scalar heading.
// Mutated every tick by the motion system; nearly every entity has one.
type PositionComponent struct {
	Pos vmath.Vec2
	Dir float64 // heading in radians
}

// VelocityComponent is linear velocity plus angular rate. Mutated by input,
// gravity and collision response.
type VelocityComponent struct {
	Pos vmath.Vec2
	Dir float64 // rad/s
}

// GravityComponent tags an entity as susceptible to the current cell's
// gravity field.
type GravityComponent struct{}
