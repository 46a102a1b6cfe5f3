package component

// TimeToDieComponent expires an entity at an absolute game time. Used by
// decorative effects; the expiry system queues holders for destruction at
// end of tick.
type TimeToDieComponent struct {
	TimeToDie float64 // absolute game time, seconds
}
