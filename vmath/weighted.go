package vmath

import (
	"math/rand"
)

// Weighted pairs a candidate value with its selection weight. Gameplay
// tables (gravity variants, populations, car counts, flavor messages) are
// static slices of these, drawn against the sector's owned generator so
// runs are reproducible from a seed.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// WeightedChoice draws one value from the table proportionally to weight.
// Zero or negative weights never win. Panics on an empty table; tables are
// compile-time constants, so an empty one is a programming error.
func WeightedChoice[T any](rng *rand.Rand, table []Weighted[T]) T {
	if len(table) == 0 {
		panic("vmath: weighted choice on empty table")
	}
	total := 0
	for _, w := range table {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total == 0 {
		return table[0].Value
	}
	pick := rng.Intn(total)
	for _, w := range table {
		if w.Weight <= 0 {
			continue
		}
		pick -= w.Weight
		if pick < 0 {
			return w.Value
		}
	}
	return table[len(table)-1].Value
}
