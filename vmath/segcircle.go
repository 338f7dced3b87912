package vmath

import "math"

// epsilon below which a segment is treated as zero-length
const segEpsilon = 1e-12

// SegmentCircle intersects the segment P(t) = start + t*(end-start), t in
// [0,1], with the circle of center (cx, cy) and radius r. It solves
// |P(t)-C|^2 = r^2 and returns the smallest root inside [0,1], preferring
// the near root over the far one. ok is false when the segment misses the
// circle or is degenerate (zero length).
func SegmentCircle(sx, sy, ex, ey, cx, cy, r float64) (t float64, ok bool) {
	dx := ex - sx
	dy := ey - sy
	fx := sx - cx
	fy := sy - cy

	a := Dot(dx, dy, dx, dy)
	if a < segEpsilon {
		return 0, false
	}

	b := 2 * Dot(fx, fy, dx, dy)
	c := Dot(fx, fy, fx, fy) - r*r

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	if t1 >= 0 && t1 <= 1 {
		return t1, true
	}
	t2 := (-b + sq) / (2 * a)
	if t2 >= 0 && t2 <= 1 {
		return t2, true
	}
	return 0, false
}
