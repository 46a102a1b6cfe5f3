package engine

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/calwren/lifeline/core"
)

// World contains all entities and their components in typed stores.
// Single-owner, single-goroutine access per tick; the store-level locks
// only guard the read-only draw pass overlapping a tick.
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Components ComponentStore

	allStores []AnyStore
	systems   []System
}

// NewWorld creates an ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity ID. IDs are never reused.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Contains reports whether the entity is live, i.e. holds at least one
// component.
func (w *World) Contains(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Despawn removes all components associated with an entity. Despawning an
// entity that is not live fails with ErrEntityMissing.
func (w *World) Despawn(e core.Entity) error {
	if !w.Contains(e) {
		return errors.Wrapf(ErrEntityMissing, "despawn %d", e)
	}
	for _, store := range w.allStores {
		store.Remove(e)
	}
	return nil
}

// DespawnBatch removes a deduplicated batch of entities in one pass per
// store. Entities already despawned are skipped silently; the batch is the
// end-of-tick flush of the deferred death list, which may legitimately
// name an entity twice.
func (w *World) DespawnBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	for _, store := range w.allStores {
		store.RemoveBatch(entities)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems in priority order
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}
