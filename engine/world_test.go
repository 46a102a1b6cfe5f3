package engine

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/calwren/lifeline/component"
	"github.com/calwren/lifeline/core"
	"github.com/calwren/lifeline/vmath"
)

func TestEntityIDsNeverReused(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	w.Components.Positions.Set(e1, component.PositionComponent{})
	if err := w.Despawn(e1); err != nil {
		t.Fatalf("Despawn failed: %v", err)
	}

	e2 := w.CreateEntity()
	if e2 == e1 {
		t.Errorf("Expected fresh entity ID, got reused %d", e1)
	}
}

func TestContains(t *testing.T) {
	w := NewWorld()

	e := w.CreateEntity()
	if w.Contains(e) {
		t.Error("Expected componentless entity to not be contained")
	}

	w.Components.Cars.Set(e, component.CarComponent{})
	if !w.Contains(e) {
		t.Error("Expected entity with component to be contained")
	}
}

func TestDespawnMissingEntity(t *testing.T) {
	w := NewWorld()

	err := w.Despawn(42)
	if !errors.Is(err, ErrEntityMissing) {
		t.Errorf("Expected ErrEntityMissing, got %v", err)
	}
}

func TestDespawnRemovesAllComponents(t *testing.T) {
	w := NewWorld()

	e := w.CreateEntity()
	w.Components.Positions.Set(e, component.PositionComponent{Pos: vmath.Vec2{X: 1, Y: 2}})
	w.Components.Velocities.Set(e, component.VelocityComponent{})
	w.Components.Solids.Set(e, component.SolidComponent{Kind: component.CollideShip})

	if err := w.Despawn(e); err != nil {
		t.Fatalf("Despawn failed: %v", err)
	}
	if w.Contains(e) {
		t.Error("Expected despawned entity to be gone from every store")
	}
}

func TestDespawnBatchToleratesDuplicates(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	w.Components.Cars.Set(e1, component.CarComponent{})
	w.Components.Cars.Set(e2, component.CarComponent{})

	w.DespawnBatch([]core.Entity{e1, e1, e2})

	if w.Contains(e1) || w.Contains(e2) {
		t.Error("Expected both entities despawned")
	}
}

func TestLookupErrors(t *testing.T) {
	w := NewWorld()

	// Missing entity
	_, err := Lookup(w, w.Components.Positions, 42)
	if !errors.Is(err, ErrEntityMissing) {
		t.Errorf("Expected ErrEntityMissing, got %v", err)
	}

	// Live entity, missing component
	e := w.CreateEntity()
	w.Components.Cars.Set(e, component.CarComponent{})
	_, err = Lookup(w, w.Components.Positions, e)
	if !errors.Is(err, ErrComponentMissing) {
		t.Errorf("Expected ErrComponentMissing, got %v", err)
	}

	// Present component
	w.Components.Positions.Set(e, component.PositionComponent{Dir: 1})
	pos, err := Lookup(w, w.Components.Positions, e)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if pos.Dir != 1 {
		t.Errorf("Expected Dir 1, got %v", pos.Dir)
	}
}
