package sector

import (
	"fmt"

	"github.com/calwren/lifeline/parameter"
)

// corpseSystem fires the deferred outcome of each car corpse once its
// deadline passes: a scored delivery flash or a scoreless explosion
type corpseSystem struct {
	s *Sector
}

func (*corpseSystem) Name() string  { return "corpse" }
func (*corpseSystem) Priority() int { return parameter.PriorityCorpse }

func (c *corpseSystem) Update() {
	s := c.s
	cs := &s.world.Components

	entities := s.world.Query().
		With(cs.Positions).
		With(cs.CarCorpses).
		Execute()
	for _, e := range entities {
		corpse, _ := cs.CarCorpses.Get(e)
		if s.Time() <= corpse.TimeToDie {
			continue
		}
		pos, _ := cs.Positions.Get(e)

		if corpse.Explode {
			s.audio.Cue(CueExplosion, 1)
			if err := s.spawnEffect("explosion", pos.Pos); err != nil {
				s.fail(err)
				return
			}
		} else {
			s.lastScoreChange = int(corpse.Multiplier * parameter.DeliveryScore)
			s.targetScore += s.lastScoreChange
			s.scoreMsg = Message{
				Text: fmt.Sprintf("+%vx%v", float64(parameter.DeliveryScore), corpse.Multiplier),
				Time: s.Time(),
			}
			s.audio.Cue(CueDeliver, 1+(corpse.Multiplier-1)/2)
			if err := s.spawnEffect("deliver", pos.Pos); err != nil {
				s.fail(err)
				return
			}
		}
		s.kill(e)
	}
}
