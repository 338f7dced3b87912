package sim

import "github.com/perryradau/space-music/vmath"

// firstHit returns the instrument whose circle the segment touches first,
// excluding excludeID (a puck never collides with its own source). It scans
// every instrument and keeps the smallest parametric t, i.e. the first body
// the puck would reach along its motion this tick.
func firstHit(f *Field, sx, sy, ex, ey float64, excludeID int) (id int, t float64, ok bool) {
	best := 2.0
	id = -1

	for i := range f.instruments {
		in := &f.instruments[i]
		if in.ID == excludeID {
			continue
		}
		ht, hit := vmath.SegmentCircle(sx, sy, ex, ey, in.X, in.Y, in.Radius)
		if hit && ht < best {
			best = ht
			id = in.ID
		}
	}

	if id < 0 {
		return -1, 0, false
	}
	return id, best, true
}
