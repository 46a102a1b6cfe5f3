package engine

// System is one phase of the simulation tick. Systems run sequentially in
// priority order; a system must stage any entity destruction rather than
// mutating the stores it is iterating.
type System interface {
	Name() string
	Priority() int // lower values run first
	Update()
}
