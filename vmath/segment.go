package vmath

// NearestSegmentPoint returns the point on segment ab closest to p.
// Standard projection with the parameter clamped to [0, 1]; degenerate
// segments (a == b) return a.
func NearestSegmentPoint(a, b, p Vec2) Vec2 {
	ab := Sub(b, a)
	lenSq := MagSq(ab)
	if lenSq == 0 {
		return a
	}
	t := Dot(Sub(p, a), ab) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Add(a, Scale(ab, t))
}

// SegmentNormal returns the outward unit normal of segment ab for a
// polyline wound west-to-east over solid ground (or counter-clockwise
// around a planet): the normal points away from the interior.
func SegmentNormal(a, b Vec2) Vec2 {
	n := Normalize(Vec2{X: a.Y - b.Y, Y: b.X - a.X})
	return Scale(n, -1)
}
