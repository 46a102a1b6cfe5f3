package component

import (
	"github.com/calwren/lifeline/core"
)

// ConnectionComponent links an entity to the next car in its train.
// Child == core.NoEntity terminates the chain. Chains are acyclic by
// construction: coupling only ever appends at the tail. Dangling children
// (despawned entities) are nulled by the train system before traversal.
type ConnectionComponent struct {
	Child core.Entity
}
