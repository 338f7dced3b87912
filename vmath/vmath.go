// Package vmath provides the float vector and segment geometry used by the
// simulation. All functions are pure.
package vmath

import "math"

// Distance returns Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSq returns squared distance, avoiding the sqrt
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize returns the unit vector of (x, y), zero-safe
func Normalize(x, y float64) (nx, ny float64) {
	mag := math.Sqrt(x*x + y*y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Dot returns x1*x2 + y1*y2
func Dot(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite reports whether both components are finite numbers
func Finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0)
}
