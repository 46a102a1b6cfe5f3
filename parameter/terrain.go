package parameter

// Terrain generation
const (
	GroundPoints = 96 // fixed per-cell ground point budget

	// Down-gravity profile: quadratic amplitude envelope over segment index
	DownAmpA = 600.0
	DownAmpB = -600.0
	DownAmpC = 50.0
	DownBase = 300.0 // baseline ground height

	// Segment point counts per variant
	DownSegmentMin   = 6
	DownSegmentMax   = 12
	CenterSegmentMin = 10
	CenterSegmentMax = 20

	// Center-gravity radial profile
	CenterAmpA   = 60.0
	CenterAmpB   = -60.0
	CenterAmpC   = 0.0
	PlanetRadius = 100.0

	CenterJitter = 16.0 // cell center offset range (+/-)

	StarsMin = 10
	StarsMax = 20

	BuildingSlots      = 9 // candidate building positions per cell
	BuildingSlotStride = 9 // ground vertex stride between slots
	BuildingSlotFirst  = 5 // first ground vertex used for a building
)
