package core

// Entity is an opaque handle to a simulation entity. IDs are allocated
// monotonically and never reused, so a handle to a despawned entity can
// never alias a later one; stale lookups simply miss.
type Entity uint64

// NoEntity is the zero handle; it never refers to a live entity.
const NoEntity Entity = 0
