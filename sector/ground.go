package sector

import (
	"fmt"
	"math"

	"github.com/calwren/lifeline/core"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/vmath"
)

// groundSystem resolves solid-versus-terrain contact. A touch either
// parks the entity on the surface or dissolves its whole train: cars
// always dissolve, the ship dissolves when it lands too fast, on rough
// ground, or safely over a populated planet (a delivery).
type groundSystem struct {
	s *Sector
}

func (*groundSystem) Name() string  { return "ground" }
func (*groundSystem) Priority() int { return parameter.PriorityGround }

func (g *groundSystem) Update() {
	s := g.s
	cell := s.Cell()
	cs := &s.world.Components

	type contact struct {
		e       core.Entity
		explode bool
	}
	multiplier := 1.0
	var contacts []contact

	entities := s.world.Query().
		With(cs.Positions).
		With(cs.Velocities).
		With(cs.Solids).
		Execute()
	for _, e := range entities {
		pos, _ := cs.Positions.Get(e)
		vel, _ := cs.Velocities.Get(e)
		solid, _ := cs.Solids.Get(e)

		hit, ok := cell.Collide(pos.Pos, solid.Size)
		if !ok {
			continue
		}

		dv := vmath.Normalize(vmath.Sub(pos.Pos, hit.Point))
		pos.Pos = vmath.Add(hit.Point, vmath.Scale(dv, solid.Size))
		pos.Dir = vmath.Heading(hit.Normal)

		speed := vmath.Mag(vel.Pos)
		isShip := cs.Ships.Has(e)
		if isShip {
			m := (parameter.MaxVel - speed) / parameter.BounceDivisor
			multiplier = vmath.Max(1, parameter.MultiplierStep*math.Round(m/parameter.MultiplierStep))
		}

		explode := cs.Cars.Has(e) ||
			(isShip && speed > parameter.MaxVel) ||
			hit.Flatness < parameter.FlatnessThreshold

		vel.Pos = vmath.Vec2{}
		cs.Positions.Set(e, pos)
		cs.Velocities.Set(e, vel)

		if explode || (isShip && cell.Population > 0) {
			contacts = append(contacts, contact{e: e, explode: explode})
		}
	}

	trainSize := -1
	delivered := 0
	for _, c := range contacts {
		count := 0
		tail := c.e
		for tail != core.NoEntity {
			conn, ok := cs.Connections.Get(tail)
			pos, okPos := cs.Positions.Get(tail)
			if !ok || !okPos {
				break
			}

			// A safe delivery keeps the ship alive; everything else in the
			// train dissolves into corpses.
			if c.explode || tail != s.player {
				s.kill(tail)
			}
			if c.explode && tail == s.player {
				s.audio.Cue(CueExplosion, 1)
				if err := s.spawnEffect("explosion", pos.Pos); err != nil {
					s.fail(err)
					return
				}
			}

			if cs.Cars.Has(tail) {
				sprite, _ := cs.Sprites.Get(tail)
				count++
				if c.explode {
					s.numCarsLost++
				} else {
					trainSize++
					s.numCarsDelivered++
				}
				// Corpses resolve staggered down the train, giving the
				// delivery payout its drumroll.
				s.spawnCarCorpse(pos, sprite,
					c.explode,
					s.Time()+float64(count)*parameter.CorpseStagger,
					multiplier)
				if !c.explode {
					multiplier += parameter.MultiplierStep
					delivered++
				}
			}

			tail = conn.Child
		}
	}
	if trainSize > s.maxTrain {
		s.maxTrain = trainSize
	}

	if delivered > 0 && cell.Population > 0 {
		oldPop := cell.Population
		cell.Population += delivered
		if cell.Population > parameter.MaxPopulation {
			cell.Population = parameter.MaxPopulation
		}
		if diff := cell.Population - oldPop; diff != 0 {
			s.popMsg = Message{
				Text: fmt.Sprintf("+%d", diff),
				Time: s.Time(),
			}
		}
	}
}
