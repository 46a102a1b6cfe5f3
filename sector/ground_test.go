package sector

import (
	"math"
	"testing"

	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/terrain"
	"github.com/calwren/lifeline/vmath"
)

func TestSoftLandingParksShip(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	s.cells[0] = flatCell(0)
	cs := &s.world.Components

	placePlayer(s, vmath.Vec2{X: 320, Y: 95}, vmath.Vec2{X: 20, Y: 0})

	(&groundSystem{s: s}).Update()

	pos, _ := cs.Positions.Get(s.player)
	if pos.Pos.X != 320 || pos.Pos.Y != 100-parameter.ShipSize {
		t.Errorf("Expected ship parked at (320, %v), got (%v, %v)",
			100-parameter.ShipSize, pos.Pos.X, pos.Pos.Y)
	}
	if math.Abs(pos.Dir-(-math.Pi/2)) > 1e-9 {
		t.Errorf("Expected ship upright (-pi/2), got %v", pos.Dir)
	}

	vel, _ := cs.Velocities.Get(s.player)
	if vel.Pos.X != 0 || vel.Pos.Y != 0 {
		t.Errorf("Expected velocity zeroed, got (%v, %v)", vel.Pos.X, vel.Pos.Y)
	}

	// Empty planet, gentle touch: nothing dissolves
	if len(s.toDie) != 0 {
		t.Errorf("Expected no staged kills, got %d", len(s.toDie))
	}
	if s.numCrashes != 0 {
		t.Errorf("Expected no crashes, got %d", s.numCrashes)
	}
}

func TestFastLandingExplodes(t *testing.T) {
	sink := &recordSink{}
	s := newTestSector(t, Config{Seed: 1, Audio: sink})
	resetWorld(t, s)
	s.cells[0] = flatCell(0)
	cs := &s.world.Components

	placePlayer(s, vmath.Vec2{X: 320, Y: 95}, vmath.Vec2{X: 0, Y: parameter.MaxVel + 5})

	(&groundSystem{s: s}).Update()

	if !staged(s, s.player) {
		t.Error("Expected the ship staged for destruction")
	}
	if len(sink.cues) != 1 || sink.cues[0] != CueExplosion {
		t.Errorf("Expected one explosion cue, got %v", sink.cues)
	}

	// The deferred despawn and respawn penalty follow on the next passes
	oldPlayer := s.player
	(&expirySystem{s: s}).Update()
	(&controlSystem{s: s}).Update()

	if s.player == oldPlayer {
		t.Error("Expected a fresh ship entity after respawn")
	}
	if !s.world.Contains(s.player) {
		t.Error("Expected the respawned ship to exist")
	}
	if s.numCrashes != 1 {
		t.Errorf("Expected 1 crash, got %d", s.numCrashes)
	}
	if s.targetScore != -parameter.CrashPenalty {
		t.Errorf("Expected target score %d, got %d", -parameter.CrashPenalty, s.targetScore)
	}
	if s.scoreMsg.Text != "-1000" {
		t.Errorf("Expected score message -1000, got %q", s.scoreMsg.Text)
	}

	pos, _ := cs.Positions.Get(s.player)
	if pos.Pos.X != parameter.SpawnX || pos.Pos.Y != parameter.SpawnY {
		t.Errorf("Expected respawn at (%v, %v), got (%v, %v)",
			parameter.SpawnX, parameter.SpawnY, pos.Pos.X, pos.Pos.Y)
	}
}

func TestDeliveryDissolvesTrain(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	s.cells[0] = flatCell(3)
	cs := &s.world.Components

	// Speed 20 keeps the landing safe and pins the base multiplier at 1
	placePlayer(s, vmath.Vec2{X: 320, Y: 95}, vmath.Vec2{X: 20, Y: 0})
	car1 := spawnAttachedCar(t, s, s.player, vmath.Vec2{X: 300, Y: 40})
	car2 := spawnAttachedCar(t, s, car1, vmath.Vec2{X: 280, Y: 40})

	(&groundSystem{s: s}).Update()

	if staged(s, s.player) {
		t.Error("Expected the ship to survive a safe delivery")
	}
	if !staged(s, car1) || !staged(s, car2) {
		t.Error("Expected both cars staged for destruction")
	}
	if s.numCarsDelivered != 2 {
		t.Errorf("Expected 2 cars delivered, got %d", s.numCarsDelivered)
	}
	if s.numCarsLost != 0 {
		t.Errorf("Expected 0 cars lost, got %d", s.numCarsLost)
	}
	if s.maxTrain != 1 {
		t.Errorf("Expected max train 1, got %d", s.maxTrain)
	}

	corpses := cs.CarCorpses.All()
	if len(corpses) != 2 {
		t.Fatalf("Expected 2 car corpses, got %d", len(corpses))
	}
	seen := map[float64]float64{}
	for _, e := range corpses {
		corpse, _ := cs.CarCorpses.Get(e)
		if corpse.Explode {
			t.Error("Expected delivery corpses, got an exploding one")
		}
		seen[corpse.TimeToDie] = corpse.Multiplier
	}
	if seen[parameter.CorpseStagger] != 1.0 {
		t.Errorf("Expected first corpse at multiplier 1, got %v", seen[parameter.CorpseStagger])
	}
	if seen[2*parameter.CorpseStagger] != 1.5 {
		t.Errorf("Expected second corpse at multiplier 1.5, got %v", seen[2*parameter.CorpseStagger])
	}

	if s.cells[0].Population != 5 {
		t.Errorf("Expected population 5 after delivery, got %d", s.cells[0].Population)
	}
	if s.popMsg.Text != "+2" {
		t.Errorf("Expected population message +2, got %q", s.popMsg.Text)
	}
}

func TestDeliveryCapsPopulation(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	s.cells[0] = flatCell(parameter.MaxPopulation - 1)

	placePlayer(s, vmath.Vec2{X: 320, Y: 95}, vmath.Vec2{X: 20, Y: 0})
	car1 := spawnAttachedCar(t, s, s.player, vmath.Vec2{X: 300, Y: 40})
	spawnAttachedCar(t, s, car1, vmath.Vec2{X: 280, Y: 40})

	(&groundSystem{s: s}).Update()

	if s.cells[0].Population != parameter.MaxPopulation {
		t.Errorf("Expected population capped at %d, got %d",
			parameter.MaxPopulation, s.cells[0].Population)
	}
	if s.popMsg.Text != "+1" {
		t.Errorf("Expected population message +1, got %q", s.popMsg.Text)
	}
}

func TestCarTouchingGroundExplodes(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	s.cells[0] = flatCell(0)

	car, err := s.spawnCar(vmath.Vec2{X: 100, Y: 98})
	if err != nil {
		t.Fatalf("spawnCar failed: %v", err)
	}

	(&groundSystem{s: s}).Update()

	if !staged(s, car) {
		t.Error("Expected the grounded car staged for destruction")
	}
	if s.numCarsLost != 1 {
		t.Errorf("Expected 1 car lost, got %d", s.numCarsLost)
	}
	if s.numCarsDelivered != 0 {
		t.Errorf("Expected 0 cars delivered, got %d", s.numCarsDelivered)
	}
}

func TestSlowLandingRaisesMultiplier(t *testing.T) {
	s := newTestSector(t, Config{Seed: 1})
	resetWorld(t, s)
	s.cells[0] = flatCell(3)
	cs := &s.world.Components

	// Dead stop: (25 - 0) / 5 rounds to the maximum multiplier of 5
	placePlayer(s, vmath.Vec2{X: 320, Y: 95}, vmath.Vec2{})
	spawnAttachedCar(t, s, s.player, vmath.Vec2{X: 300, Y: 40})

	(&groundSystem{s: s}).Update()

	corpses := cs.CarCorpses.All()
	if len(corpses) != 1 {
		t.Fatalf("Expected 1 car corpse, got %d", len(corpses))
	}
	corpse, _ := cs.CarCorpses.Get(corpses[0])
	if corpse.Multiplier != 5.0 {
		t.Errorf("Expected multiplier 5 for a dead-stop landing, got %v", corpse.Multiplier)
	}
}

// slopedCell tilts the ground across the cell width; the landing
// flatness works out to 640/sqrt(rise^2+640^2).
func slopedCell(rise float64) *terrain.Cell {
	return &terrain.Cell{
		Name:    "Testus System",
		Ground:  []vmath.Vec2{{X: 0, Y: 100}, {X: parameter.ViewWidth, Y: 100 + rise}},
		Gravity: terrain.Gravity{Kind: terrain.GravityDown, Strength: 20},
	}
}

func TestLandingFlatnessBoundary(t *testing.T) {
	cases := []struct {
		name    string
		rise    float64
		explode bool
	}{
		// flatness ~0.905, just above the 0.9 cutoff
		{"gentle slope parks", 300, false},
		// flatness ~0.894, just below
		{"steep slope explodes", 320, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &recordSink{}
			s := newTestSector(t, Config{Seed: 1, Audio: sink})
			resetWorld(t, s)
			s.cells[0] = slopedCell(tc.rise)

			// Drift onto the slope midpoint at zero speed so only the
			// terrain angle decides the outcome
			placePlayer(s, vmath.Vec2{X: 320, Y: 100 + tc.rise/2 - 5}, vmath.Vec2{})

			(&groundSystem{s: s}).Update()

			if got := staged(s, s.player); got != tc.explode {
				t.Errorf("Expected exploded=%v on rise %v, got %v", tc.explode, tc.rise, got)
			}
			if tc.explode {
				if len(sink.cues) != 1 || sink.cues[0] != CueExplosion {
					t.Errorf("Expected one explosion cue, got %v", sink.cues)
				}
			} else if len(sink.cues) != 0 {
				t.Errorf("Expected no cues for a safe landing, got %v", sink.cues)
			}
		})
	}
}
