package audio

import (
	"os"
	"strconv"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/sector"
)

// Config controls audio playback, read from the environment
type Config struct {
	Enabled      bool
	MasterVolume float64
}

// ConfigFromEnv reads LIFELINE_AUDIO and LIFELINE_VOLUME. Audio defaults
// on at volume 0.8.
func ConfigFromEnv() Config {
	cfg := Config{Enabled: true, MasterVolume: 0.8}

	switch os.Getenv("LIFELINE_AUDIO") {
	case "0", "off", "false":
		cfg.Enabled = false
	}
	if v := os.Getenv("LIFELINE_VOLUME"); v != "" {
		if vol, err := strconv.ParseFloat(v, 64); err == nil {
			if vol < 0 {
				vol = 0
			} else if vol > 1 {
				vol = 1
			}
			cfg.MasterVolume = vol
		}
	}
	return cfg
}

// Manager owns the speaker and implements the simulation's cue sink. A
// failed speaker init degrades to silence rather than aborting the game.
type Manager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	engineCtrl  *beep.Ctrl
	initialized bool
}

// NewManager creates a sound manager; call Initialize before use
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and the looping engine voice. Any
// failure leaves the manager silent and returns nil.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLen)); err != nil {
		return nil
	}
	speaker.Play(m.mixer)

	thruster := newVolume(NewThrusterGenerator(rate), m.cfg.MasterVolume)
	m.engineCtrl = &beep.Ctrl{Streamer: thruster, Paused: true}
	m.mixer.Add(m.engineCtrl)

	m.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close; clearing
// the mixer stops all output.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.engineCtrl != nil {
		m.engineCtrl.Paused = true
	}
	m.mixer.Clear()
	m.initialized = false
}

// Cue plays a one-shot effect for a simulation event
func (m *Manager) Cue(c sector.Cue, pitch float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	var s beep.Streamer
	switch c {
	case sector.CuePickup:
		s = CreatePickupSound(m.cfg)
	case sector.CueDeliver:
		s = CreateDeliverSound(m.cfg, pitch)
	case sector.CueExplosion:
		s = CreateExplosionSound(m.cfg)
	case sector.CueVictory:
		s = CreateVictorySound(m.cfg)
	case sector.CueDefeat:
		s = CreateDefeatSound(m.cfg)
	}
	if s == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// EngineGain gates the continuous thruster rumble
func (m *Manager) EngineGain(gain float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.engineCtrl == nil {
		return
	}

	speaker.Lock()
	m.engineCtrl.Paused = gain <= 0
	speaker.Unlock()
}
