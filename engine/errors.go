package engine

import (
	"github.com/pkg/errors"

	"github.com/calwren/lifeline/core"
)

var (
	// ErrEntityMissing is returned when operating on a despawned or never
	// spawned entity.
	ErrEntityMissing = errors.New("engine: entity missing")

	// ErrComponentMissing is returned when a live entity lacks the
	// requested component.
	ErrComponentMissing = errors.New("engine: component missing")
)

// Lookup fetches a component with the full error taxonomy: a missing
// entity and a missing component are distinguishable with errors.Is.
// Hot paths use Store.Get directly; Lookup is for callers that need to
// treat the two cases differently.
func Lookup[T any](w *World, s *Store[T], e core.Entity) (T, error) {
	if val, ok := s.Get(e); ok {
		return val, nil
	}
	var zero T
	if !w.Contains(e) {
		return zero, errors.Wrapf(ErrEntityMissing, "entity %d", e)
	}
	return zero, errors.Wrapf(ErrComponentMissing, "entity %d", e)
}
