package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/calwren/lifeline/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope around a streamer
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely.
// math.Log2(0) is -Inf, so zero volume becomes a silent streamer.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreatePickupSound generates a short bright ding for coupling a car
func CreatePickupSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	// Fundamental (A5) plus an octave overtone
	fund := NewOscillator(880.0, parameter.PickupSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate)

	over := NewOscillator(1760.0, parameter.PickupSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.MasterVolume)
}

// CreateDeliverSound generates a two-note chime. Pitch scales both notes,
// so higher score multipliers chime higher.
func CreateDeliverSound(cfg Config, pitch float64) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if pitch <= 0 {
		pitch = 1
	}

	// B5 then E6
	n1 := NewOscillator(987.77*pitch, parameter.DeliverNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.DeliverNoteDuration, parameter.DeliverNoteAttack, parameter.DeliverNoteRelease, rate)

	n2 := NewOscillator(1318.51*pitch, parameter.DeliverNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.DeliverNoteDuration, parameter.DeliverNoteAttack, parameter.DeliverNoteRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	return newVolume(sequence, cfg.MasterVolume*0.8)
}

// CreateExplosionSound generates a noise burst over a low rumble
func CreateExplosionSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	noise := NewOscillator(0, parameter.ExplosionSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.ExplosionSoundDuration, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	rumble := NewOscillator(60.0, parameter.ExplosionSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, parameter.ExplosionSoundDuration, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(rumbleShaped, 0.5),
	)

	return newVolume(mixed, cfg.MasterVolume)
}

// CreateVictorySound generates a rising major arpeggio
func CreateVictorySound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	// C5 E5 G5 C6
	freqs := []float64{523.25, 659.25, 783.99, 1046.50}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		n := NewOscillator(f, parameter.FanfareNoteDuration, WaveSine, rate)
		notes = append(notes, NewEnvelope(n, parameter.FanfareNoteDuration, parameter.FanfareNoteAttack, parameter.FanfareNoteRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.MasterVolume)
}

// CreateDefeatSound generates a falling saw dirge
func CreateDefeatSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	// C5 Ab4 F4 C4
	freqs := []float64{523.25, 415.30, 349.23, 261.63}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		n := NewOscillator(f, parameter.FanfareNoteDuration, WaveSaw, rate)
		notes = append(notes, NewEnvelope(n, parameter.FanfareNoteDuration, parameter.FanfareNoteAttack, parameter.FanfareNoteRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.MasterVolume*0.6)
}

// ThrusterGenerator loops a low rumble for the ship engine. It streams
// forever; the caller gates it with a beep.Ctrl.
type ThrusterGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewThrusterGenerator creates the looping engine rumble
func NewThrusterGenerator(sr beep.SampleRate) *ThrusterGenerator {
	return &ThrusterGenerator{
		sr:      sr,
		samples: sr.N(parameter.EngineSoundCycle),
	}
}

func (g *ThrusterGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Slow sweep between 70Hz and 110Hz over the cycle
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := 70 + 40*math.Sin(cyclePos*math.Pi)

		rumble := 0.2 * math.Sin(2*math.Pi*freq*t)
		hiss := 0.05 * (rand.Float64()*2 - 1)
		sample := rumble + hiss

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThrusterGenerator) Err() error { return nil }
