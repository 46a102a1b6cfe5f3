package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector used for all world-space positions and
// velocities. Float math keeps the physics hot path free of fixed-point
// conversion; terminal cell mapping happens only at draw time.
type Vec2 struct {
	X, Y float64
}

func Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func Mag(v Vec2) float64 {
	return math.Sqrt(MagSq(v))
}

// Normalize returns the unit vector of v. The zero vector maps to the unit
// X axis so callers never divide by zero when two bodies overlap exactly.
func Normalize(v Vec2) Vec2 {
	mag := Mag(v)
	if mag == 0 {
		return Vec2{X: 1, Y: 0}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// FromAngle returns the unit vector at heading a (radians, screen-space Y down)
func FromAngle(a float64) Vec2 {
	return Vec2{math.Cos(a), math.Sin(a)}
}

// Heading returns the angle of v in radians
func Heading(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// Perpendicular returns v rotated 90 degrees counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}
