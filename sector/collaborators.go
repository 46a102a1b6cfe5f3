package sector

import (
	"github.com/calwren/lifeline/input"
)

// Cue is a fire-and-forget audio event. The sector decides when a cue
// fires, never how it is mixed or played.
type Cue uint8

const (
	CuePickup Cue = iota
	CueExplosion
	CueDeliver
	CueVictory
	CueDefeat
)

// CueSink is the narrow audio collaborator interface the sector consumes.
// Pitch scales CueDeliver by the score multiplier; other cues ignore it.
type CueSink interface {
	Cue(c Cue, pitch float64)
	EngineGain(gain float64)
}

// NullCueSink discards all cues, used in tests and when audio is disabled
type NullCueSink struct{}

func (NullCueSink) Cue(Cue, float64)   {}
func (NullCueSink) EngineGain(float64) {}

// Controls is the input collaborator: named action states sampled once per
// tick. No raw event parsing happens inside the sector.
type Controls interface {
	Held(a input.Action) bool
}

type nullControls struct{}

func (nullControls) Held(input.Action) bool { return false }
