package sector

import (
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/vmath"
)

// gravitySystem accelerates tagged entities along the current cell's field
type gravitySystem struct {
	s *Sector
}

func (*gravitySystem) Name() string  { return "gravity" }
func (*gravitySystem) Priority() int { return parameter.PriorityGravity }

func (g *gravitySystem) Update() {
	s := g.s
	cell := s.Cell()
	cs := &s.world.Components

	entities := s.world.Query().
		With(cs.Positions).
		With(cs.Velocities).
		With(cs.Gravity).
		Execute()
	for _, e := range entities {
		pos, _ := cs.Positions.Get(e)
		vel, _ := cs.Velocities.Get(e)
		accel := cell.Gravity.FieldAt(pos.Pos, cell.Center)
		vel.Pos = vmath.Add(vel.Pos, vmath.Scale(accel, parameter.DT))
		cs.Velocities.Set(e, vel)
	}
}
