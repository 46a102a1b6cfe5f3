package sector

import (
	"fmt"

	"github.com/calwren/lifeline/input"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/vmath"
)

// controlSystem respawns the player after a crash, animates the HUD score
// toward its target and applies held controls to the ship.
type controlSystem struct {
	s *Sector
}

func (*controlSystem) Name() string  { return "control" }
func (*controlSystem) Priority() int { return parameter.PriorityControl }

func (c *controlSystem) Update() {
	s := c.s

	if !s.world.Contains(s.player) {
		player, err := s.spawnShip()
		if err != nil {
			s.fail(err)
			return
		}
		s.player = player
		s.lastScoreChange = -parameter.CrashPenalty
		s.targetScore += s.lastScoreChange
		s.scoreMsg = Message{
			Text: fmt.Sprintf("-%d", parameter.CrashPenalty),
			Time: s.Time(),
		}
		s.numCrashes++
	}

	// The visible score eases toward the target with a truncating step, so
	// it snaps once the step truncates to zero.
	delta := int(parameter.DT * float64(s.targetScore-s.score))
	s.score += delta
	if delta == 0 && s.score != s.targetScore {
		s.score = s.targetScore
	}

	cs := &s.world.Components
	pos, okPos := cs.Positions.Get(s.player)
	vel, okVel := cs.Velocities.Get(s.player)
	eng, okEng := cs.Engines.Get(s.player)
	if !okPos || !okVel || !okEng {
		return
	}

	rightLeft := 0.0
	if s.controls.Held(input.ActionRight) {
		rightLeft += 1
	}
	if s.controls.Held(input.ActionLeft) {
		rightLeft -= 1
	}
	pos.Dir += parameter.TurnRate * parameter.DT * rightLeft

	thrust := s.controls.Held(input.ActionThrust)
	if thrust {
		accel := vmath.Scale(vmath.FromAngle(pos.Dir), parameter.ThrustAccel*parameter.DT)
		vel.Pos = vmath.Add(vel.Pos, accel)
	}
	eng.On = thrust

	gain := 0.0
	if thrust {
		gain = 1.0
	}
	s.audio.EngineGain(gain)

	cs.Positions.Set(s.player, pos)
	cs.Velocities.Set(s.player, vel)
	cs.Engines.Set(s.player, eng)
}
