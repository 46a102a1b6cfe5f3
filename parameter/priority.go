package parameter

// System execution priorities (lower runs first). The order is the tick
// contract: input before gravity, integration before train propagation,
// pickups before ground hits, transitions after scoring, expiry last.
const (
	PriorityControl    = 10
	PriorityGravity    = 20
	PriorityMotion     = 30
	PriorityTrain      = 40
	PriorityPickup     = 50
	PriorityGround     = 60
	PriorityCorpse     = 70
	PriorityTransition = 80
	PriorityExpiry     = 900
)
