package terrain

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/vmath"
)

// Building is a candidate building placement on a cell's ground
type Building struct {
	Pos vmath.Vec2
	Dir float64
}

// Cell is one tile of the sector grid: generated ground, gravity field,
// population and decoration anchors. Cells are generated once at sector
// creation and mutated (population only) for the life of the run.
type Cell struct {
	Name       string
	Ground     []vmath.Vec2
	Gravity    Gravity
	Population int
	Center     vmath.Vec2
	Stars      []vmath.Vec2
	Buildings  []Building
}

var gravityTable = []vmath.Weighted[GravityKind]{
	{Value: GravityCenter, Weight: 4},
	{Value: GravityDown, Weight: 1},
	{Value: GravityNone, Weight: 10},
}

// populationTable returns the weighted candidates for a cell's starting
// population. Empty worlds dominate; the zero weight differs per variant.
func populationTable(zeroWeight int) []vmath.Weighted[int] {
	table := make([]vmath.Weighted[int], 0, 6)
	table = append(table, vmath.Weighted[int]{Value: 0, Weight: zeroWeight})
	for p := 1; p <= 5; p++ {
		table = append(table, vmath.Weighted[int]{Value: p, Weight: 1})
	}
	return table
}

// NewCell generates one cell, consuming a name from names when the variant
// is inhabited. All randomness comes from the caller's generator.
func NewCell(names *[]string, rng *rand.Rand) *Cell {
	c := &Cell{}

	numStars := parameter.StarsMin + rng.Intn(parameter.StarsMax-parameter.StarsMin)
	c.Stars = make([]vmath.Vec2, 0, numStars)
	for i := 0; i < numStars; i++ {
		c.Stars = append(c.Stars, vmath.Vec2{
			X: rng.Float64() * parameter.ViewWidth,
			Y: rng.Float64() * parameter.ViewHeight,
		})
	}

	c.Center = vmath.Vec2{
		X: parameter.ViewWidth/2 + rangeFloat(rng, -parameter.CenterJitter, parameter.CenterJitter),
		Y: parameter.ViewHeight/2 + rangeFloat(rng, -parameter.CenterJitter, parameter.CenterJitter),
	}

	strength := rangeFloat(rng, parameter.GravityMin, parameter.GravityMax)
	kind := vmath.WeightedChoice(rng, gravityTable)
	c.Gravity = Gravity{Kind: kind, Strength: strength}

	switch kind {
	case GravityDown:
		c.generateDown(rng)
		c.Population = vmath.WeightedChoice(rng, populationTable(3))
		c.Name = fmt.Sprintf("%s System", popName(names))
	case GravityCenter:
		c.generateCenter(rng)
		c.Population = vmath.WeightedChoice(rng, populationTable(6))
		c.Name = fmt.Sprintf("%s System", popName(names))
	case GravityNone:
		c.Population = 0
		c.Name = "Empty Space"
	}

	rng.Shuffle(len(c.Buildings), func(i, j int) {
		c.Buildings[i], c.Buildings[j] = c.Buildings[j], c.Buildings[i]
	})

	return c
}

// segmentLengths greedily accumulates random-length segments until the
// next would exceed the point budget, then forces the final segment to
// consume the remainder.
func segmentLengths(rng *rand.Rand, minLen, maxLen, budget int) []int {
	var lengths []int
	total := 0
	for {
		segment := minLen + rng.Intn(maxLen-minLen)
		lengths = append(lengths, segment)
		if segment+total > budget {
			break
		}
		total += segment
	}
	lengths[len(lengths)-1] = budget - total
	return lengths
}

// generateDown builds a west-to-east ground profile of quadratic segments
// under the amplitude envelope, one interior segment flattened into a
// landing strip, then closes the polygon under the view.
func (c *Cell) generateDown(rng *rand.Rand) {
	numPoints := parameter.GroundPoints
	c.Ground = make([]vmath.Vec2, 0, numPoints+2)

	w := parameter.ViewWidth / float64(numPoints-1)

	lengths := segmentLengths(rng, parameter.DownSegmentMin, parameter.DownSegmentMax, numPoints)
	numSegments := len(lengths)
	landingSegment := 1 + rng.Intn(numSegments-2)

	y1 := 0.0
	for s, segment := range lengths {
		x := float64(s) / float64(numSegments-1)
		amp := parameter.DownAmpA*x*x + parameter.DownAmpB*x + parameter.DownAmpC

		y2 := y1
		if s != landingSegment {
			y2 = rangeFloat(rng, -1, 1) * amp
		}
		a := -rangeFloat(rng, 100, 300)

		for i := 0; i < segment; i++ {
			x := float64(i) / float64(segment)
			cc := y1
			b := y2 - a - cc
			y := y1
			if s != landingSegment {
				y = a*x*x + b*x + cc
			}
			c.Ground = append(c.Ground, vmath.Vec2{
				X: float64(len(c.Ground)) * w,
				Y: parameter.DownBase + y,
			})
		}
		y1 = y2
	}

	c.placeBuildings(func(p vmath.Vec2) float64 { return -math.Pi / 2 })

	// Closing edge under the view, so bodies cannot tunnel out the bottom
	c.Ground = append(c.Ground,
		vmath.Vec2{X: parameter.ViewWidth, Y: parameter.ViewHeight},
		vmath.Vec2{X: 0, Y: parameter.ViewHeight},
	)
}

// generateCenter builds a closed radial profile around the cell center
// with the analogous quadratic radius perturbation, one segment flattened
// into a landing arc.
func (c *Cell) generateCenter(rng *rand.Rand) {
	numPoints := parameter.GroundPoints
	c.Ground = make([]vmath.Vec2, 0, numPoints)

	lengths := segmentLengths(rng, parameter.CenterSegmentMin, parameter.CenterSegmentMax, numPoints)
	numSegments := len(lengths)
	landingSegment := rng.Intn(numSegments - 1)

	r1 := 0.0
	for s, segment := range lengths {
		x := float64(s) / float64(numSegments-1)
		amp := parameter.CenterAmpA*x*x + parameter.CenterAmpB*x + parameter.CenterAmpC

		r2 := r1
		if s != landingSegment {
			r2 = rangeFloat(rng, -1, 1) * amp
		}
		a := rangeFloat(rng, 100, 150)

		for i := 0; i < segment; i++ {
			x := float64(i) / float64(segment)
			cc := r1
			b := r2 - a - cc
			r := parameter.PlanetRadius + r1
			if s != landingSegment {
				r = parameter.PlanetRadius + a*x*x + b*x + cc
			}
			theta := 2 * math.Pi * float64(len(c.Ground)) / float64(numPoints)
			c.Ground = append(c.Ground, vmath.Vec2{
				X: r*math.Cos(theta) + c.Center.X,
				Y: r*math.Sin(theta) + c.Center.Y,
			})
		}
		r1 = r2
	}

	c.placeBuildings(func(p vmath.Vec2) float64 {
		return math.Atan2(p.Y-c.Center.Y, p.X-c.Center.X)
	})
}

// placeBuildings records candidate building anchors on fixed ground
// vertices; the sector spawns the first Population of them after shuffle.
func (c *Cell) placeBuildings(dir func(vmath.Vec2) float64) {
	c.Buildings = make([]Building, 0, parameter.BuildingSlots)
	for i := 0; i < parameter.BuildingSlots; i++ {
		idx := parameter.BuildingSlotFirst + i*parameter.BuildingSlotStride
		if idx >= len(c.Ground) {
			break
		}
		p := c.Ground[idx]
		c.Buildings = append(c.Buildings, Building{Pos: p, Dir: dir(p)})
	}
}

func popName(names *[]string) string {
	if len(*names) == 0 {
		return "Maximus"
	}
	name := (*names)[len(*names)-1]
	*names = (*names)[:len(*names)-1]
	return name
}

func rangeFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
