package sector

import (
	"fmt"
	"math"

	"github.com/calwren/lifeline/component"
	"github.com/calwren/lifeline/core"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/terrain"
	"github.com/calwren/lifeline/vmath"
)

// spawnShip creates the player ship at the fixed spawn point
func (s *Sector) spawnShip() (core.Entity, error) {
	if err := s.assets.Ensure("ship"); err != nil {
		return core.NoEntity, err
	}
	if err := s.assets.Ensure("engine"); err != nil {
		return core.NoEntity, err
	}

	e := s.world.CreateEntity()
	cs := &s.world.Components
	cs.Positions.Set(e, component.PositionComponent{
		Pos: vmath.Vec2{X: parameter.SpawnX, Y: parameter.SpawnY},
		Dir: parameter.SpawnDir,
	})
	cs.Velocities.Set(e, component.VelocityComponent{})
	cs.Ships.Set(e, component.ShipComponent{})
	cs.Gravity.Set(e, component.GravityComponent{})
	cs.Solids.Set(e, component.SolidComponent{Kind: component.CollideShip, Size: parameter.ShipSize})
	cs.Sprites.Set(e, component.SpriteComponent{Name: "ship"})
	cs.Engines.Set(e, component.EngineComponent{Sprite: "engine"})
	cs.Connections.Set(e, component.ConnectionComponent{})
	return e, nil
}

// spawnCar creates an uncoupled supply car at pos with a random sprite,
// heading and slow spin
func (s *Sector) spawnCar(pos vmath.Vec2) (core.Entity, error) {
	sprite := fmt.Sprintf("car%d", 1+s.rng.Intn(4))
	if err := s.assets.Ensure(sprite); err != nil {
		return core.NoEntity, err
	}

	spin := 1.0
	if s.rng.Intn(2) == 0 {
		spin = -1.0
	}

	e := s.world.CreateEntity()
	cs := &s.world.Components
	cs.Positions.Set(e, component.PositionComponent{
		Pos: pos,
		Dir: s.rng.Float64() * 2 * math.Pi,
	})
	cs.Velocities.Set(e, component.VelocityComponent{Dir: spin})
	cs.Cars.Set(e, component.CarComponent{})
	cs.Solids.Set(e, component.SolidComponent{Kind: component.CollideCar, Size: parameter.CarSize})
	cs.Sprites.Set(e, component.SpriteComponent{Name: sprite})
	cs.Connections.Set(e, component.ConnectionComponent{})
	return e, nil
}

// spawnStar creates a decorative background star
func (s *Sector) spawnStar(pos vmath.Vec2, seed int) error {
	sprite := fmt.Sprintf("star%d", 1+seed%5)
	if err := s.assets.Ensure(sprite); err != nil {
		return err
	}

	e := s.world.CreateEntity()
	cs := &s.world.Components
	cs.Positions.Set(e, component.PositionComponent{Pos: pos})
	cs.Doodads.Set(e, component.DoodadComponent{Sprite: sprite})
	return nil
}

// spawnBuilding creates a decorative building on a ground anchor
func (s *Sector) spawnBuilding(b terrain.Building, seed int) error {
	sprite := fmt.Sprintf("building%d", 1+seed%2)
	if err := s.assets.Ensure(sprite); err != nil {
		return err
	}

	e := s.world.CreateEntity()
	cs := &s.world.Components
	cs.Positions.Set(e, component.PositionComponent{Pos: b.Pos, Dir: b.Dir})
	cs.Doodads.Set(e, component.DoodadComponent{Sprite: sprite})
	return nil
}

// spawnEffect creates a short-lived deliver or explosion flash at pos
func (s *Sector) spawnEffect(sprite string, pos vmath.Vec2) error {
	if err := s.assets.Ensure(sprite); err != nil {
		return err
	}

	e := s.world.CreateEntity()
	cs := &s.world.Components
	cs.Positions.Set(e, component.PositionComponent{Pos: pos})
	cs.Doodads.Set(e, component.DoodadComponent{Sprite: sprite})
	cs.TimeToDie.Set(e, component.TimeToDieComponent{TimeToDie: s.Time() + parameter.EffectLifetime})
	return nil
}

// spawnCarCorpse creates the transient remains of a collected or crashed
// car. Explosion corpses scatter; delivery corpses stay put awaiting their
// scored outcome.
func (s *Sector) spawnCarCorpse(pos component.PositionComponent, sprite component.SpriteComponent, explode bool, timeToDie, multiplier float64) {
	speedMult := 0.0
	if explode {
		speedMult = 1.0
	}

	e := s.world.CreateEntity()
	cs := &s.world.Components
	cs.Positions.Set(e, pos)
	cs.Sprites.Set(e, sprite)
	cs.Velocities.Set(e, component.VelocityComponent{
		Pos: vmath.Vec2{
			X: s.rangeFloat(-parameter.CorpseScatter, parameter.CorpseScatter) * speedMult,
			Y: s.rangeFloat(-parameter.CorpseScatter, parameter.CorpseScatter) * speedMult,
		},
		Dir: s.rangeFloat(-parameter.CorpseSpin, parameter.CorpseSpin) * speedMult,
	})
	cs.CarCorpses.Set(e, component.CarCorpseComponent{
		Multiplier: multiplier,
		TimeToDie:  timeToDie,
		Explode:    explode,
	})
}

// spawnCellObjects populates a freshly entered cell: stars, one building
// per population point, and a weighted draw of new cars
func (s *Sector) spawnCellObjects(cell *terrain.Cell) error {
	for i, p := range cell.Stars {
		if err := s.spawnStar(p, i); err != nil {
			return err
		}
	}

	n := cell.Population
	if n > len(cell.Buildings) {
		n = len(cell.Buildings)
	}
	for i, b := range cell.Buildings[:n] {
		if err := s.spawnBuilding(b, i); err != nil {
			return err
		}
	}

	for _, p := range cell.CarSpawnPoints(s.rng) {
		if _, err := s.spawnCar(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sector) rangeFloat(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
