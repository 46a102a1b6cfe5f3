package sector

import (
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/vmath"
)

// motionSystem integrates positions and headings one timestep
type motionSystem struct {
	s *Sector
}

func (*motionSystem) Name() string  { return "motion" }
func (*motionSystem) Priority() int { return parameter.PriorityMotion }

func (m *motionSystem) Update() {
	s := m.s
	cs := &s.world.Components

	entities := s.world.Query().
		With(cs.Positions).
		With(cs.Velocities).
		Execute()
	for _, e := range entities {
		pos, _ := cs.Positions.Get(e)
		vel, _ := cs.Velocities.Get(e)
		pos.Pos = vmath.Add(pos.Pos, vmath.Scale(vel.Pos, parameter.DT))
		pos.Dir += vel.Dir * parameter.DT
		cs.Positions.Set(e, pos)
	}
}
