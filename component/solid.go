package component

// CollideKind partitions solids for the pairwise collision matrix.
type CollideKind uint8

const (
	CollideShip CollideKind = iota
	CollideCar
)

// CollidesWith is the interaction matrix: ships collide with everything,
// cars only with ships. Cars drifting through each other is intentional.
func (k CollideKind) CollidesWith(other CollideKind) bool {
	if k == CollideCar && other == CollideCar {
		return false
	}
	return true
}

// SolidComponent participates in circle-circle collision and in terrain
// collision queries.
type SolidComponent struct {
	Kind CollideKind
	Size float64 // collision radius
}
