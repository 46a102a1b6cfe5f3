package sector

import (
	"fmt"
	"math/rand"

	"github.com/calwren/lifeline/asset"
	"github.com/calwren/lifeline/core"
	"github.com/calwren/lifeline/engine"
	"github.com/calwren/lifeline/input"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/terrain"
)

// State is the campaign state. Victory and Defeat are terminal: the
// simulation suspends and only the draw pass continues.
type State uint8

const (
	StateGame State = iota
	StateVictory
	StateDefeat
)

// Message is HUD text with the game time it was set, for renderer fading
type Message struct {
	Text string
	Time float64
}

// GridPos is a cell coordinate in the sector grid
type GridPos struct {
	X, Y int
}

// Stats are the campaign counters shown on the end screens
type Stats struct {
	Day           int
	Research      int
	Crashes       int
	MaxTrain      int
	CarsLost      int
	CarsDelivered int
	StartPop      int
	StartPlanets  int
}

// Config wires the sector's collaborators. Zero values get safe defaults:
// a null cue sink, always-released controls, a stock asset registry.
type Config struct {
	Seed     int64
	Controls Controls
	Audio    CueSink
	Assets   *asset.Registry
}

// Sector is the root aggregate: it owns the entity world, the grid of
// cells, the player handle, score and campaign state. Destroyed and
// recreated whenever a new game starts.
type Sector struct {
	Name string

	world   *engine.World
	cells   []*terrain.Cell
	cellPos GridPos
	player  core.Entity
	rng     *rand.Rand

	assets   *asset.Registry
	controls Controls
	audio    CueSink

	tick   int64
	paused bool
	state  State
	err    error

	score           int
	targetScore     int
	lastScoreChange int
	scoreMsg        Message
	popMsg          Message
	message         Message

	day      int
	research int
	strength int

	maxTrain         int
	numCrashes       int
	numCarsLost      int
	numCarsDelivered int
	startPop         int
	startPlanets     int

	toDie []core.Entity
}

// New generates a sector and spawns the player ship in cell (0, 0)
func New(cfg Config) (*Sector, error) {
	if cfg.Controls == nil {
		cfg.Controls = nullControls{}
	}
	if cfg.Audio == nil {
		cfg.Audio = NullCueSink{}
	}
	if cfg.Assets == nil {
		cfg.Assets = asset.NewRegistry()
	}

	s := &Sector{
		world:    engine.NewWorld(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		assets:   cfg.Assets,
		controls: cfg.Controls,
		audio:    cfg.Audio,
		strength: 1,
	}

	names := systemNames()
	s.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	s.cells = make([]*terrain.Cell, 0, parameter.SectorSize*parameter.SectorSize)
	for i := 0; i < parameter.SectorSize*parameter.SectorSize; i++ {
		cell := terrain.NewCell(&names, s.rng)
		if cell.Population > 0 {
			s.startPlanets++
		}
		s.startPop += cell.Population
		s.cells = append(s.cells, cell)
	}

	s.Name = fmt.Sprintf("%s Sector", popTail(&names))

	player, err := s.spawnShip()
	if err != nil {
		return nil, err
	}
	s.player = player

	if err := s.spawnCellObjects(s.Cell()); err != nil {
		return nil, err
	}

	s.message = Message{
		Text: fmt.Sprintf("Press %s to thrust.", input.ActionThrust),
		Time: s.Time(),
	}

	s.world.AddSystem(&controlSystem{s: s})
	s.world.AddSystem(&gravitySystem{s: s})
	s.world.AddSystem(&motionSystem{s: s})
	s.world.AddSystem(&trainSystem{s: s})
	s.world.AddSystem(&pickupSystem{s: s})
	s.world.AddSystem(&groundSystem{s: s})
	s.world.AddSystem(&corpseSystem{s: s})
	s.world.AddSystem(&transitionSystem{s: s})
	s.world.AddSystem(&expirySystem{s: s})

	return s, nil
}

// Logic advances the simulation one fixed timestep. Suspended in terminal
// states and while paused; the draw pass is unaffected.
func (s *Sector) Logic() error {
	if s.state != StateGame || s.paused {
		return s.err
	}
	s.tick++
	s.world.Update()
	return s.err
}

// Time returns current game time in seconds
func (s *Sector) Time() float64 {
	return float64(s.tick) * parameter.DT
}

// SetPaused toggles the process-wide pause flag the logic step respects
func (s *Sector) SetPaused(p bool) {
	s.paused = p
}

// Paused reports the pause flag
func (s *Sector) Paused() bool {
	return s.paused
}

// Cell returns the cell the player currently occupies
func (s *Sector) Cell() *terrain.Cell {
	return s.cells[s.cellIdx(s.cellPos)]
}

// CellAt returns the cell at a grid coordinate
func (s *Sector) CellAt(p GridPos) *terrain.Cell {
	return s.cells[s.cellIdx(p)]
}

// CellPos returns the player's grid coordinate
func (s *Sector) CellPos() GridPos {
	return s.cellPos
}

// World exposes the entity store for the read-only draw pass
func (s *Sector) World() *engine.World {
	return s.world
}

// Player returns the player ship handle; it changes on respawn
func (s *Sector) Player() core.Entity {
	return s.player
}

// State returns the campaign state
func (s *Sector) State() State {
	return s.state
}

// Score returns the animated score shown on the HUD
func (s *Sector) Score() int {
	return s.score
}

// LastScoreChange returns the sign-carrying magnitude of the most recent
// score event, for HUD coloring
func (s *Sector) LastScoreChange() int {
	return s.lastScoreChange
}

// Messages returns the center message, score delta and population delta
func (s *Sector) Messages() (center, score, pop Message) {
	return s.message, s.scoreMsg, s.popMsg
}

// Stats returns the campaign counters
func (s *Sector) Stats() Stats {
	return Stats{
		Day:           s.day,
		Research:      s.research,
		Crashes:       s.numCrashes,
		MaxTrain:      s.maxTrain,
		CarsLost:      s.numCarsLost,
		CarsDelivered: s.numCarsDelivered,
		StartPop:      s.startPop,
		StartPlanets:  s.startPlanets,
	}
}

// TotalPopulation sums the population over every cell
func (s *Sector) TotalPopulation() int {
	total := 0
	for _, cell := range s.cells {
		total += cell.Population
	}
	return total
}

func (s *Sector) cellIdx(p GridPos) int {
	return p.Y*parameter.SectorSize + p.X
}

// fail records the first error raised inside a system; Logic surfaces it
func (s *Sector) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// kill stages an entity for the end-of-tick despawn flush. Duplicates are
// fine; the flush deduplicates.
func (s *Sector) kill(e core.Entity) {
	s.toDie = append(s.toDie, e)
}

func popTail(names *[]string) string {
	if len(*names) == 0 {
		return "Bratus"
	}
	n := (*names)[len(*names)-1]
	*names = (*names)[:len(*names)-1]
	return n
}
