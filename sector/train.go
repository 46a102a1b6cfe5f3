package sector

import (
	"github.com/calwren/lifeline/core"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/vmath"
)

// trainSystem nulls connections to despawned children, then drags each
// child to a fixed distance behind its parent. Propagation runs one link
// per parent per tick, which gives trains their springy lag.
type trainSystem struct {
	s *Sector
}

func (*trainSystem) Name() string  { return "train" }
func (*trainSystem) Priority() int { return parameter.PriorityTrain }

func (t *trainSystem) Update() {
	s := t.s
	cs := &s.world.Components

	for _, e := range cs.Connections.All() {
		conn, _ := cs.Connections.Get(e)
		if conn.Child != core.NoEntity && !s.world.Contains(conn.Child) {
			conn.Child = core.NoEntity
			cs.Connections.Set(e, conn)
		}
	}

	type link struct {
		parentPos vmath.Vec2
		child     core.Entity
	}
	var links []link
	parents := s.world.Query().
		With(cs.Positions).
		With(cs.Connections).
		Execute()
	for _, e := range parents {
		conn, _ := cs.Connections.Get(e)
		if conn.Child == core.NoEntity {
			continue
		}
		pos, _ := cs.Positions.Get(e)
		links = append(links, link{parentPos: pos.Pos, child: conn.Child})
	}

	for _, l := range links {
		childPos, ok := cs.Positions.Get(l.child)
		if !ok {
			continue
		}
		dv := vmath.Normalize(vmath.Sub(childPos.Pos, l.parentPos))
		childPos.Pos = vmath.Add(l.parentPos, vmath.Scale(dv, parameter.LinkLength))
		childPos.Dir = vmath.Heading(dv)
		cs.Positions.Set(l.child, childPos)
	}
}
