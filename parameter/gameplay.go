package parameter

// Sector layout
const (
	SectorSize    = 7    // cells per axis of the sector grid
	EdgeTolerance = 10.0 // easy band past the view edge before a transition
)

// Scoring
const (
	DeliveryScore   = 100  // base score per delivered car, times multiplier
	CrashPenalty    = 1000 // score penalty on ship respawn
	MultiplierStep  = 0.5  // per consecutive delivered car
	MaxPopulation   = 9    // per-cell population cap
	CorpseStagger   = 0.25 // seconds between chained corpse deadlines
	EffectLifetime  = 0.5  // seconds before deliver/explosion doodads expire
	CorpseScatter   = 32.0 // explosion corpse velocity range (+/-)
	CorpseSpin      = 2.0  // explosion corpse angular velocity range (+/-)
	TransitionSpace = 10.0 // spacing of train links along the entry edge
)

// Campaign progression
const (
	VictoryResearch  = 1000
	ResearchHintAt   = 250
	ResearchProtoAt  = 500
	StrengthTwoDay   = 150
	StrengthThreeDay = 200
	InfectionChance  = 0.5 // per-transition probability of an outbreak
)

// Player spawn
const (
	SpawnX   = ViewWidth / 2
	SpawnY   = 50.0
	SpawnDir = -1.5707963267948966 // -pi/2, nose up
)
