package terrain

import (
	"github.com/calwren/lifeline/vmath"
)

// Hit describes a terrain collision: the nearest ground point, the
// segment's outward normal, and the flatness score: the dot product of
// the normal against the local anti-gravity direction. 1.0 is a perfectly
// flat landing surface; lower values are steeper.
type Hit struct {
	Flatness float64
	Normal   vmath.Vec2
	Point    vmath.Vec2
}

// Collide scans consecutive ground segments and returns the first one, in
// index order, whose nearest point lies within size of pos. First match
// wins; there is no best-of selection.
func (c *Cell) Collide(pos vmath.Vec2, size float64) (Hit, bool) {
	for i := 1; i < len(c.Ground); i++ {
		a := c.Ground[i-1]
		b := c.Ground[i]
		nearest := vmath.NearestSegmentPoint(a, b, pos)
		if vmath.Mag(vmath.Sub(nearest, pos)) < size {
			normal := vmath.SegmentNormal(a, b)
			up := c.Gravity.UpAt(pos, c.Center)
			return Hit{
				Flatness: vmath.Dot(normal, up),
				Normal:   normal,
				Point:    nearest,
			}, true
		}
	}
	return Hit{}, false
}
