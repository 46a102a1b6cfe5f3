package engine

import (
	"github.com/calwren/lifeline/core"
)

// AnyStore provides type-erased operations for lifecycle management, so
// the world can despawn an entity from every store without knowing the
// concrete component types.
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
	RemoveBatch(entities []core.Entity)
}

// QueryableStore extends AnyStore with the enumeration the query builder
// needs to intersect component sets.
type QueryableStore interface {
	AnyStore

	All() []core.Entity
}
