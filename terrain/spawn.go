package terrain

import (
	"math"
	"math/rand"

	"github.com/calwren/lifeline/vmath"
)

// carCountTable is the weighted number of cars regenerated on cell entry
var carCountTable = []vmath.Weighted[int]{
	{Value: 0, Weight: 20},
	{Value: 1, Weight: 20},
	{Value: 2, Weight: 10},
	{Value: 3, Weight: 10},
	{Value: 10, Weight: 3},
	{Value: 20, Weight: 1},
}

// CarSpawnPoints draws a car count from the weighted table and positions
// the cars by gravity variant: scattered around the center in open space,
// ringed around the planet for center gravity, scattered above ground for
// down gravity.
func (c *Cell) CarSpawnPoints(rng *rand.Rand) []vmath.Vec2 {
	num := vmath.WeightedChoice(rng, carCountTable)
	points := make([]vmath.Vec2, 0, num)

	for i := 0; i < num; i++ {
		switch c.Gravity.Kind {
		case GravityNone:
			points = append(points, vmath.Add(c.Center, vmath.Vec2{
				X: rangeFloat(rng, -256, 256),
				Y: rangeFloat(rng, -256, 256),
			}))
		case GravityCenter:
			theta := rng.Float64() * 2 * math.Pi
			const r = 256.0
			points = append(points, vmath.Add(c.Center, vmath.Vec2{
				X: r * math.Cos(theta),
				Y: r * math.Sin(theta),
			}))
		case GravityDown:
			points = append(points, vmath.Vec2{
				X: rangeFloat(rng, -256, 256),
				Y: rangeFloat(rng, 0, 256),
			})
		}
	}
	return points
}
