package parameter

import "time"

// Audio synthesis
const (
	AudioSampleRate = 48000
	AudioBufferLen  = 100 * time.Millisecond

	PickupSoundDuration = 90 * time.Millisecond
	PickupSoundAttack   = 2 * time.Millisecond
	PickupSoundRelease  = 60 * time.Millisecond

	DeliverNoteDuration = 80 * time.Millisecond
	DeliverNoteAttack   = 2 * time.Millisecond
	DeliverNoteRelease  = 50 * time.Millisecond

	ExplosionSoundDuration = 400 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 350 * time.Millisecond

	FanfareNoteDuration = 180 * time.Millisecond
	FanfareNoteAttack   = 5 * time.Millisecond
	FanfareNoteRelease  = 120 * time.Millisecond

	EngineSoundCycle = 2 * time.Second
)
