package terrain

import (
	"github.com/calwren/lifeline/vmath"
)

// GravityKind discriminates the per-cell gravity field variant
type GravityKind uint8

const (
	GravityNone GravityKind = iota
	GravityDown
	GravityCenter
)

// Gravity is a cell's field: a variant plus its strength. Strength is
// meaningless for GravityNone.
type Gravity struct {
	Kind     GravityKind
	Strength float64
}

// FieldAt returns the acceleration applied to a body at pos. Center fields
// pull toward the cell center; a body exactly at the center falls along an
// arbitrary unit axis rather than dividing by zero.
func (g Gravity) FieldAt(pos, center vmath.Vec2) vmath.Vec2 {
	switch g.Kind {
	case GravityDown:
		return vmath.Vec2{X: 0, Y: g.Strength}
	case GravityCenter:
		return vmath.Scale(vmath.Normalize(vmath.Sub(center, pos)), g.Strength)
	default:
		return vmath.Vec2{}
	}
}

// UpAt returns the local anti-gravity unit direction at pos, the reference
// for landing flatness. GravityNone has no up; it returns the zero vector.
func (g Gravity) UpAt(pos, center vmath.Vec2) vmath.Vec2 {
	switch g.Kind {
	case GravityDown:
		return vmath.Vec2{X: 0, Y: -1}
	case GravityCenter:
		return vmath.Normalize(vmath.Sub(pos, center))
	default:
		return vmath.Vec2{}
	}
}
