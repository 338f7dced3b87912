package vmath

import "testing"

// TestDot verifies the product against hand-computed pairs, including the
// perpendicular case the intersection math relies on
func TestDot(t *testing.T) {
	cases := []struct {
		x1, y1, x2, y2 float64
		want           float64
	}{
		{1, 0, 0, 1, 0},   // Perpendicular
		{3, 4, 3, 4, 25},  // Self dot = squared length
		{2, -1, 5, 3, 7},  // 10 - 3
		{-2, 6, 4, 1, -2}, // -8 + 6
	}
	for _, c := range cases {
		if got := Dot(c.x1, c.y1, c.x2, c.y2); got != c.want {
			t.Errorf("Dot(%v,%v,%v,%v): expected %v, got %v",
				c.x1, c.y1, c.x2, c.y2, c.want, got)
		}
	}
}
