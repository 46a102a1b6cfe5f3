package sector

import (
	"strings"
	"testing"

	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/terrain"
	"github.com/calwren/lifeline/vmath"
)

// driftCell is a cell with no gravity, so edge placement keeps the entry
// heading instead of resetting to the drop-in position
func driftCell(pop int) *terrain.Cell {
	return &terrain.Cell{
		Name:       "Driftus System",
		Ground:     []vmath.Vec2{{X: 0, Y: 470}, {X: parameter.ViewWidth, Y: 470}},
		Gravity:    terrain.Gravity{Kind: terrain.GravityNone},
		Population: pop,
	}
}

func clearPopulations(s *Sector) {
	for _, cell := range s.cells {
		cell.Population = 0
	}
}

func crossEastEdge(s *Sector) {
	placePlayer(s, vmath.Vec2{X: parameter.ViewWidth + parameter.EdgeTolerance + 5, Y: 200}, vmath.Vec2{})
	(&transitionSystem{s: s}).Update()
}

func TestEastEdgeWrapsAround(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	clearPopulations(s)
	s.cellPos = GridPos{X: parameter.SectorSize - 1, Y: 0}
	s.cells[0] = driftCell(0)

	crossEastEdge(s)

	if s.cellPos != (GridPos{X: 0, Y: 0}) {
		t.Errorf("Expected wrap to (0, 0), got %+v", s.cellPos)
	}
	pos, _ := s.world.Components.Positions.Get(s.player)
	if pos.Pos.X != 0 || pos.Pos.Y != 200 {
		t.Errorf("Expected entry at (0, 200), got (%v, %v)", pos.Pos.X, pos.Pos.Y)
	}
}

func TestNorthEdgeWrapsAround(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	clearPopulations(s)
	s.cellPos = GridPos{X: 2, Y: 0}
	s.cells[s.cellIdx(GridPos{X: 2, Y: parameter.SectorSize - 1})] = driftCell(0)

	placePlayer(s, vmath.Vec2{X: 300, Y: -parameter.EdgeTolerance - 5}, vmath.Vec2{})
	(&transitionSystem{s: s}).Update()

	want := GridPos{X: 2, Y: parameter.SectorSize - 1}
	if s.cellPos != want {
		t.Errorf("Expected wrap to %+v, got %+v", want, s.cellPos)
	}
	pos, _ := s.world.Components.Positions.Get(s.player)
	if pos.Pos.X != 300 || pos.Pos.Y != parameter.ViewHeight {
		t.Errorf("Expected entry at (300, %v), got (%v, %v)",
			parameter.ViewHeight, pos.Pos.X, pos.Pos.Y)
	}
}

func TestTransitionAdvancesCampaign(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	clearPopulations(s)
	s.cells[10].Population = 5
	s.cells[20].Population = 2
	s.cells[s.cellIdx(GridPos{X: 1, Y: 0})] = driftCell(0)

	crossEastEdge(s)

	if s.day != 1 {
		t.Errorf("Expected day 1, got %d", s.day)
	}
	if s.research != 2 {
		t.Errorf("Expected research 2 from two populated planets, got %d", s.research)
	}
	if !strings.Contains(s.message.Text, "rotate") {
		t.Errorf("Expected the rotate tutorial on day 1, got %q", s.message.Text)
	}
}

func TestTransitionRepositionsTrain(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	clearPopulations(s)
	s.cells[s.cellIdx(GridPos{X: 1, Y: 0})] = driftCell(0)
	cs := &s.world.Components

	car1 := spawnAttachedCar(t, s, s.player, vmath.Vec2{X: 600, Y: 200})
	car2 := spawnAttachedCar(t, s, car1, vmath.Vec2{X: 580, Y: 200})

	crossEastEdge(s)

	p1, _ := cs.Positions.Get(car1)
	p2, _ := cs.Positions.Get(car2)
	if p1.Pos.X != -parameter.TransitionSpace || p1.Pos.Y != 200 {
		t.Errorf("Expected first car at (%v, 200), got (%v, %v)",
			-parameter.TransitionSpace, p1.Pos.X, p1.Pos.Y)
	}
	if p2.Pos.X != -2*parameter.TransitionSpace || p2.Pos.Y != 200 {
		t.Errorf("Expected second car at (%v, 200), got (%v, %v)",
			-2*parameter.TransitionSpace, p2.Pos.X, p2.Pos.Y)
	}
}

func TestTransitionIntoDownCellResetsDrop(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	clearPopulations(s)
	s.cells[s.cellIdx(GridPos{X: 1, Y: 0})] = flatCell(0)
	cs := &s.world.Components

	placePlayer(s, vmath.Vec2{X: parameter.ViewWidth + parameter.EdgeTolerance + 5, Y: 333},
		vmath.Vec2{X: 15, Y: -3})
	(&transitionSystem{s: s}).Update()

	pos, _ := cs.Positions.Get(s.player)
	if pos.Pos.X != parameter.ViewWidth/2 || pos.Pos.Y != 0 {
		t.Errorf("Expected drop-in at (%v, 0), got (%v, %v)",
			parameter.ViewWidth/2, pos.Pos.X, pos.Pos.Y)
	}
	if pos.Dir != parameter.SpawnDir {
		t.Errorf("Expected drop-in heading %v, got %v", parameter.SpawnDir, pos.Dir)
	}
	vel, _ := cs.Velocities.Get(s.player)
	if vel.Pos.X != 0 || vel.Pos.Y != 0 || vel.Dir != 0 {
		t.Errorf("Expected velocity reset, got %+v", vel)
	}
}

func TestTransitionDiscardsLooseCarsAndDoodads(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	clearPopulations(s)
	s.cells[s.cellIdx(GridPos{X: 1, Y: 0})] = driftCell(0)

	loose, err := s.spawnCar(vmath.Vec2{X: 200, Y: 200})
	if err != nil {
		t.Fatalf("spawnCar failed: %v", err)
	}
	attached := spawnAttachedCar(t, s, s.player, vmath.Vec2{X: 600, Y: 200})
	if err := s.spawnEffect("deliver", vmath.Vec2{X: 50, Y: 50}); err != nil {
		t.Fatalf("spawnEffect failed: %v", err)
	}

	crossEastEdge(s)

	if !staged(s, loose) {
		t.Error("Expected the loose car discarded on transition")
	}
	if staged(s, attached) {
		t.Error("Expected the attached car carried across")
	}
}

func TestVictoryAtResearchThreshold(t *testing.T) {
	sink := &recordSink{}
	s := newTestSector(t, Config{Seed: 1, Audio: sink})
	resetWorld(t, s)
	clearPopulations(s)
	s.cells[10].Population = 2
	s.cells[s.cellIdx(GridPos{X: 1, Y: 0})] = driftCell(0)
	s.research = parameter.VictoryResearch - 1

	crossEastEdge(s)

	if s.State() != StateVictory {
		t.Errorf("Expected StateVictory, got %v", s.State())
	}
	if s.strength != 0 {
		t.Errorf("Expected infection strength 0 after victory, got %d", s.strength)
	}
	if !strings.Contains(s.message.Text, "triumph") {
		t.Errorf("Expected the victory message, got %q", s.message.Text)
	}
	found := false
	for _, c := range sink.cues {
		if c == CueVictory {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a victory cue, got %v", sink.cues)
	}

	// Terminal state suspends the simulation
	if err := s.Logic(); err != nil {
		t.Fatalf("Logic failed: %v", err)
	}
	if s.Time() != 0 {
		t.Errorf("Expected time frozen after victory, got %v", s.Time())
	}
}

func TestDefeatWhenLastPlanetDies(t *testing.T) {
	s := newTestSector(t, Config{Seed: 3})
	resetWorld(t, s)
	clearPopulations(s)
	s.cells[5].Population = 1
	s.cells[s.cellIdx(GridPos{X: 1, Y: 0})] = driftCell(0)
	s.day = 3 // past the tutorial days, so the infection can roll

	for i := 0; i < 500; i++ {
		s.cellPos = GridPos{X: 0, Y: 0}
		crossEastEdge(s)
		(&expirySystem{s: s}).Update()
		if s.TotalPopulation() == 0 {
			if s.State() != StateDefeat {
				t.Errorf("Expected StateDefeat when the last planet dies, got %v", s.State())
			}
			if !strings.Contains(s.message.Text, "no more people") {
				t.Errorf("Expected the defeat message, got %q", s.message.Text)
			}
			return
		}
	}
	t.Fatal("Infection never struck in 500 days")
}

func TestInfectionFloorsAtZero(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	clearPopulations(s)
	s.cells[5].Population = 2
	s.strength = 3

	(&transitionSystem{s: s}).infect([]int{5})

	if s.cells[5].Population != 0 {
		t.Errorf("Expected population floored at 0, got %d", s.cells[5].Population)
	}
	if s.message.Text == "" {
		t.Error("Expected an infection message")
	}
}

func TestNoTransitionInsideCell(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	placePlayer(s, vmath.Vec2{X: 320, Y: 240}, vmath.Vec2{})

	(&transitionSystem{s: s}).Update()

	if s.cellPos != (GridPos{}) {
		t.Errorf("Expected no cell change, got %+v", s.cellPos)
	}
	if s.day != 0 {
		t.Errorf("Expected day 0, got %d", s.day)
	}
}
