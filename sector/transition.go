package sector

import (
	"fmt"
	"math"

	"github.com/calwren/lifeline/component"
	"github.com/calwren/lifeline/core"
	"github.com/calwren/lifeline/input"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/terrain"
	"github.com/calwren/lifeline/vmath"
)

// Edge crossing directions
const (
	crossEast = iota
	crossNorth
	crossWest
	crossSouth
)

// transitionSystem handles leaving a cell: a day passes, research accrues
// from every populated planet, the infection spreads, and the train is
// re-placed at the opposite edge of the destination cell
type transitionSystem struct {
	s *Sector
}

func (*transitionSystem) Name() string  { return "transition" }
func (*transitionSystem) Priority() int { return parameter.PriorityTransition }

func (t *transitionSystem) Update() {
	s := t.s
	cs := &s.world.Components

	pos, ok := cs.Positions.Get(s.player)
	if !ok {
		return
	}

	crossed := false
	dir := 0
	if pos.Pos.X > parameter.ViewWidth+parameter.EdgeTolerance {
		s.cellPos.X = wrap(s.cellPos.X+1, parameter.SectorSize)
		crossed, dir = true, crossEast
	}
	if pos.Pos.Y < -parameter.EdgeTolerance {
		s.cellPos.Y = wrap(s.cellPos.Y-1, parameter.SectorSize)
		crossed, dir = true, crossNorth
	}
	if pos.Pos.X < -parameter.EdgeTolerance {
		s.cellPos.X = wrap(s.cellPos.X-1, parameter.SectorSize)
		crossed, dir = true, crossWest
	}
	if pos.Pos.Y > parameter.ViewHeight+parameter.EdgeTolerance {
		s.cellPos.Y = wrap(s.cellPos.Y+1, parameter.SectorSize)
		crossed, dir = true, crossSouth
	}
	if !crossed {
		return
	}

	var popIndices []int
	for i, cell := range s.cells {
		if cell.Population > 0 {
			popIndices = append(popIndices, i)
		}
	}
	oldResearch := s.research
	oldDay := s.day
	s.research += len(popIndices)
	s.day++

	specialDay := t.announce(oldResearch, oldDay)
	if !specialDay && s.rng.Float64() < parameter.InfectionChance && s.strength > 0 {
		t.infect(popIndices)
	}
	if s.TotalPopulation() == 0 && len(popIndices) > 0 {
		s.audio.Cue(CueDefeat, 1)
		s.message = Message{
			Text: fmt.Sprintf("%s has no more people\nleft to save.\nYour services are no longer necessary.", s.Name),
			Time: s.Time(),
		}
		s.state = StateDefeat
	}

	t.placeTrain(dir, pos.Pos)

	for _, e := range cs.Cars.All() {
		car, _ := cs.Cars.Get(e)
		if !car.Attached {
			s.kill(e)
		}
	}
	for _, e := range cs.Doodads.All() {
		s.kill(e)
	}
	if err := s.spawnCellObjects(s.Cell()); err != nil {
		s.fail(err)
	}
}

// announce sets the day's message when something notable happens and
// reports whether the infection should skip this day
func (t *transitionSystem) announce(oldResearch, oldDay int) bool {
	s := t.s
	special := false
	say := func(text string) {
		s.message = Message{Text: text, Time: s.Time()}
		special = true
	}

	switch s.day {
	case 1:
		say(fmt.Sprintf("Press %s/%s to rotate.", input.ActionLeft, input.ActionRight))
	case 2:
		say("Deliver supplies to\npopulated planets.")
	case 3:
		say(fmt.Sprintf("Hold %s to see sector map.", input.ActionShowMap))
	}

	switch {
	case s.research >= parameter.VictoryResearch && oldResearch < parameter.VictoryResearch:
		s.audio.Cue(CueVictory, 1)
		say(fmt.Sprintf("A triumph of science!\nYou have saved %s!.", s.Name))
		s.strength = 0
		s.state = StateVictory
	case s.research >= parameter.ResearchProtoAt && oldResearch < parameter.ResearchProtoAt:
		say("Desperate measures enable\na prototype innoculation.")
	case s.research >= parameter.ResearchHintAt && oldResearch < parameter.ResearchHintAt:
		say("Researchers see hints\nof a possible cure.")
	}

	if s.research < parameter.VictoryResearch {
		if s.day >= parameter.StrengthTwoDay && oldDay < parameter.StrengthTwoDay {
			say("The pathogen mutates to\nunfathomable deadliness.")
			s.strength = 2
		} else if s.day >= parameter.StrengthThreeDay && oldDay < parameter.StrengthThreeDay {
			say("The disease evolves to an\napocalyptic level of strength!")
			s.strength = 3
		}
	}
	return special
}

// infect strikes one populated planet, removing strength population
func (t *transitionSystem) infect(popIndices []int) {
	s := t.s
	if len(popIndices) == 0 {
		return
	}
	idx := popIndices[s.rng.Intn(len(popIndices))]
	cell := s.cells[idx]
	cell.Population -= s.strength
	if cell.Population < 0 {
		cell.Population = 0
	}

	name := cell.Name
	var table []vmath.Weighted[string]
	if cell.Population == 0 {
		table = []vmath.Weighted[string]{
			{Value: fmt.Sprintf("%s has been\nwiped out.", name), Weight: 4},
			{Value: fmt.Sprintf("There is no more\nillness at the %s.", name), Weight: 4},
			{Value: fmt.Sprintf("%s no longer\nrequires supplies.", name), Weight: 3},
			{Value: fmt.Sprintf("It is too late\nfor people of the %s.", name), Weight: 3},
			{Value: fmt.Sprintf("%s has gone silent.", name), Weight: 1},
		}
	} else {
		table = []vmath.Weighted[string]{
			{Value: fmt.Sprintf("Hospitals are\noverwhelmed at the %s.", name), Weight: 4},
			{Value: fmt.Sprintf("Illness takes for\nthe worse at the %s.", name), Weight: 4},
			{Value: fmt.Sprintf("Disease spreads\nat the %s.", name), Weight: 3},
			{Value: fmt.Sprintf("%s is hit by\nthe infection.", name), Weight: 3},
			{Value: fmt.Sprintf("The living envy\nthe dead at the %s.", name), Weight: 3},
			{Value: fmt.Sprintf("The end is near\nat the %s.", name), Weight: 1},
		}
	}
	s.message = Message{Text: vmath.WeightedChoice(s.rng, table), Time: s.Time()}
}

// placeTrain re-places the ship and its whole train at the destination
// cell's entry edge, spaced into the void beyond it. Falling into a Down
// cell always restarts from the top at rest.
func (t *transitionSystem) placeTrain(dir int, pos vmath.Vec2) {
	s := t.s
	cs := &s.world.Components

	var start, delta vmath.Vec2
	resetVel := false
	if s.Cell().Gravity.Kind == terrain.GravityDown {
		start = vmath.Vec2{X: parameter.ViewWidth / 2, Y: 0}
		delta = vmath.Vec2{Y: -parameter.TransitionSpace}
		resetVel = true
	} else {
		switch dir {
		case crossEast:
			start = vmath.Vec2{X: 0, Y: pos.Y}
			delta = vmath.Vec2{X: -parameter.TransitionSpace}
		case crossNorth:
			start = vmath.Vec2{X: pos.X, Y: parameter.ViewHeight}
			delta = vmath.Vec2{Y: parameter.TransitionSpace}
		case crossWest:
			start = vmath.Vec2{X: parameter.ViewWidth, Y: pos.Y}
			delta = vmath.Vec2{X: parameter.TransitionSpace}
		case crossSouth:
			start = vmath.Vec2{X: pos.X, Y: 0}
			delta = vmath.Vec2{Y: -parameter.TransitionSpace}
		}
	}

	cur := start
	tail := s.player
	for tail != core.NoEntity {
		p, okPos := cs.Positions.Get(tail)
		v, okVel := cs.Velocities.Get(tail)
		conn, okConn := cs.Connections.Get(tail)
		if !okPos || !okVel || !okConn {
			break
		}
		p.Pos = cur
		cur = vmath.Add(cur, delta)
		if resetVel {
			v = component.VelocityComponent{}
			p.Dir = -math.Pi / 2
		}
		cs.Positions.Set(tail, p)
		cs.Velocities.Set(tail, v)
		tail = conn.Child
	}
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
