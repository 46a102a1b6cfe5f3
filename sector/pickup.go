package sector

import (
	"github.com/pkg/errors"

	"github.com/calwren/lifeline/core"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/vmath"
)

var errCorruptChain = errors.New("connection chain does not terminate")

// pickupSystem detects overlapping solids and couples loose cars to the
// tail of the ship's train
type pickupSystem struct {
	s *Sector
}

func (*pickupSystem) Name() string  { return "pickup" }
func (*pickupSystem) Priority() int { return parameter.PriorityPickup }

func (p *pickupSystem) Update() {
	s := p.s
	cs := &s.world.Components

	solids := s.world.Query().
		With(cs.Positions).
		With(cs.Solids).
		Execute()

	type pair struct {
		a, b core.Entity
	}
	var pairs []pair
	for _, e1 := range solids {
		pos1, _ := cs.Positions.Get(e1)
		solid1, _ := cs.Solids.Get(e1)
		for _, e2 := range solids {
			if e1 == e2 {
				continue
			}
			solid2, _ := cs.Solids.Get(e2)
			if !solid1.Kind.CollidesWith(solid2.Kind) {
				continue
			}
			pos2, _ := cs.Positions.Get(e2)
			if vmath.Mag(vmath.Sub(pos1.Pos, pos2.Pos)) < solid1.Size+solid2.Size {
				pairs = append(pairs, pair{a: e1, b: e2})
			}
		}
	}

	for _, pr := range pairs {
		if !cs.Ships.Has(pr.a) {
			continue
		}
		car, ok := cs.Cars.Get(pr.b)
		if !ok || car.Attached {
			continue
		}

		s.audio.Cue(CuePickup, 1)

		// Walk to the tail of the train and append. The walk is bounded by
		// the solid count; a longer walk means a corrupted chain.
		tail := pr.a
		for steps := 0; ; steps++ {
			if steps > len(solids) {
				s.fail(errCorruptChain)
				return
			}
			conn, _ := cs.Connections.Get(tail)
			if conn.Child == core.NoEntity {
				conn.Child = pr.b
				cs.Connections.Set(tail, conn)
				break
			}
			tail = conn.Child
		}

		car.Attached = true
		cs.Cars.Set(pr.b, car)
	}
}
