package engine

import (
	"github.com/calwren/lifeline/component"
)

// ComponentStore holds one typed store per component type. Fields are
// public for direct system access; the map-free layout keeps lookups off
// the hot path.
type ComponentStore struct {
	// Kinetics
	Positions  *Store[component.PositionComponent]
	Velocities *Store[component.VelocityComponent]
	Gravity    *Store[component.GravityComponent]

	// Interaction
	Solids      *Store[component.SolidComponent]
	Connections *Store[component.ConnectionComponent]

	// Roles
	Ships      *Store[component.ShipComponent]
	Cars       *Store[component.CarComponent]
	CarCorpses *Store[component.CarCorpseComponent]

	// Lifecycle
	TimeToDie *Store[component.TimeToDieComponent]

	// Rendering hints, consumed only by the draw pass
	Sprites *Store[component.SpriteComponent]
	Engines *Store[component.EngineComponent]
	Doodads *Store[component.DoodadComponent]
}

func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Positions:   NewStore[component.PositionComponent](),
		Velocities:  NewStore[component.VelocityComponent](),
		Gravity:     NewStore[component.GravityComponent](),
		Solids:      NewStore[component.SolidComponent](),
		Connections: NewStore[component.ConnectionComponent](),
		Ships:       NewStore[component.ShipComponent](),
		Cars:        NewStore[component.CarComponent](),
		CarCorpses:  NewStore[component.CarCorpseComponent](),
		TimeToDie:   NewStore[component.TimeToDieComponent](),
		Sprites:     NewStore[component.SpriteComponent](),
		Engines:     NewStore[component.EngineComponent](),
		Doodads:     NewStore[component.DoodadComponent](),
	}

	all := []AnyStore{
		cs.Positions,
		cs.Velocities,
		cs.Gravity,
		cs.Solids,
		cs.Connections,
		cs.Ships,
		cs.Cars,
		cs.CarCorpses,
		cs.TimeToDie,
		cs.Sprites,
		cs.Engines,
		cs.Doodads,
	}
	return cs, all
}
