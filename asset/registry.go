package asset

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrUnknownSprite is returned when a sprite key has no registration.
// Spawning gameplay entities cannot proceed without their sprites, so
// callers propagate this as a fatal construction error.
var ErrUnknownSprite = errors.New("asset: unknown sprite")

// Sprite is a glyph-based sprite: animation frames cycled over Period
// seconds, plus a palette index the renderer maps to a concrete style.
type Sprite struct {
	Frames  []rune
	Period  float64
	Palette Palette
}

// Palette is an abstract color class; the renderer owns the mapping to
// terminal styles.
type Palette uint8

const (
	PaletteShip Palette = iota
	PaletteCar
	PaletteStar
	PaletteBuilding
	PaletteEffect
	PaletteFlame
)

// Frame returns the animation frame for game time t
func (s Sprite) Frame(t float64) rune {
	if len(s.Frames) == 0 {
		return '?'
	}
	if len(s.Frames) == 1 || s.Period <= 0 {
		return s.Frames[0]
	}
	phase := t / s.Period
	idx := int(phase*float64(len(s.Frames))) % len(s.Frames)
	if idx < 0 {
		idx = 0
	}
	return s.Frames[idx]
}

// Registry resolves sprite keys. The simulation calls Ensure before
// spawning anything that references a key; lookups after that cannot fail.
type Registry struct {
	mu      sync.RWMutex
	sprites map[string]Sprite
}

// NewRegistry creates a registry preloaded with the stock sprites
func NewRegistry() *Registry {
	r := &Registry{sprites: make(map[string]Sprite)}

	r.Register("ship", Sprite{Frames: []rune{'A'}, Palette: PaletteShip})
	r.Register("engine", Sprite{Frames: []rune{'v', 'w'}, Period: 0.2, Palette: PaletteFlame})
	r.Register("car1", Sprite{Frames: []rune{'o'}, Palette: PaletteCar})
	r.Register("car2", Sprite{Frames: []rune{'c'}, Palette: PaletteCar})
	r.Register("car3", Sprite{Frames: []rune{'u'}, Palette: PaletteCar})
	r.Register("car4", Sprite{Frames: []rune{'n'}, Palette: PaletteCar})
	r.Register("star1", Sprite{Frames: []rune{'.', '+'}, Period: 2.1, Palette: PaletteStar})
	r.Register("star2", Sprite{Frames: []rune{'.', '*'}, Period: 1.7, Palette: PaletteStar})
	r.Register("star3", Sprite{Frames: []rune{'.'}, Palette: PaletteStar})
	r.Register("star4", Sprite{Frames: []rune{'*', 'x'}, Period: 2.9, Palette: PaletteStar})
	r.Register("star5", Sprite{Frames: []rune{'+'}, Palette: PaletteStar})
	r.Register("building1", Sprite{Frames: []rune{'#'}, Palette: PaletteBuilding})
	r.Register("building2", Sprite{Frames: []rune{'H'}, Palette: PaletteBuilding})
	r.Register("deliver", Sprite{Frames: []rune{'$', '+'}, Period: 0.25, Palette: PaletteEffect})
	r.Register("explosion", Sprite{Frames: []rune{'*', 'X', '#'}, Period: 0.5, Palette: PaletteEffect})

	return r
}

// Register installs or replaces a sprite
func (r *Registry) Register(key string, s Sprite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sprites[key] = s
}

// Ensure verifies a key is registered
func (r *Registry) Ensure(key string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.sprites[key]; !ok {
		return errors.Wrap(ErrUnknownSprite, key)
	}
	return nil
}

// Get returns the sprite for a key
func (r *Registry) Get(key string) (Sprite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sprites[key]
	if !ok {
		return Sprite{}, errors.Wrap(ErrUnknownSprite, key)
	}
	return s, nil
}
