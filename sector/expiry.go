package sector

import (
	"github.com/calwren/lifeline/parameter"
)

// expirySystem sweeps timed entities past their deadline, then flushes
// every destruction staged during the tick in one batch
type expirySystem struct {
	s *Sector
}

func (*expirySystem) Name() string  { return "expiry" }
func (*expirySystem) Priority() int { return parameter.PriorityExpiry }

func (x *expirySystem) Update() {
	s := x.s
	cs := &s.world.Components

	for _, e := range cs.TimeToDie.All() {
		ttd, _ := cs.TimeToDie.Get(e)
		if s.Time() > ttd.TimeToDie {
			s.kill(e)
		}
	}

	if len(s.toDie) > 0 {
		s.world.DespawnBatch(s.toDie)
		s.toDie = s.toDie[:0]
	}
}
