package component

// ShipComponent marks the player-pilotable ship.
type ShipComponent struct{}

// CarComponent is a mobile supply unit. Attached flips once when the car is
// coupled into a train and never flips back.
type CarComponent struct {
	Attached bool
}

// CarCorpseComponent is the transient remains of a car after delivery or a
// crash. The deferred outcome fires when game time passes TimeToDie:
// Explode spawns a scoreless explosion, otherwise a scored delivery at
// Multiplier times the base value.
type CarCorpseComponent struct {
	Multiplier float64
	TimeToDie  float64 // absolute game time, seconds
	Explode    bool
}
