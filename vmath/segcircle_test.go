package vmath

import (
	"math"
	"testing"
)

// TestSegmentCircleDirectHit verifies a segment through a circle reports the
// near intersection
func TestSegmentCircleDirectHit(t *testing.T) {
	t1, ok := SegmentCircle(0, 0, 20, 0, 10, 0, 3)
	if !ok {
		t.Fatal("expected intersection")
	}
	// Entry point is at x=7, so t = 7/20
	want := 7.0 / 20.0
	if math.Abs(t1-want) > 1e-9 {
		t.Errorf("expected t=%f, got %f", want, t1)
	}
}

// TestSegmentCircleMiss verifies a segment passing beside a circle misses
func TestSegmentCircleMiss(t *testing.T) {
	if _, ok := SegmentCircle(0, 0, 20, 0, 10, 5, 3); ok {
		t.Error("expected no intersection")
	}
}

// TestSegmentCircleZeroLength verifies a degenerate segment never reports a
// collision, even when starting inside the circle
func TestSegmentCircleZeroLength(t *testing.T) {
	if _, ok := SegmentCircle(10, 0, 10, 0, 10, 0, 3); ok {
		t.Error("expected no intersection for zero-length segment")
	}
}

// TestSegmentCircleTangent verifies a grazing segment reports a single valid
// t inside [0,1]
func TestSegmentCircleTangent(t *testing.T) {
	// Segment along y=3 grazes the circle at (10,0) r=3 exactly at x=10
	t1, ok := SegmentCircle(0, 3, 20, 3, 10, 0, 3)
	if !ok {
		t.Fatal("expected tangent intersection")
	}
	if t1 < 0 || t1 > 1 {
		t.Errorf("tangent t out of range: %f", t1)
	}
	if math.Abs(t1-0.5) > 1e-6 {
		t.Errorf("expected tangent at t=0.5, got %f", t1)
	}
}

// TestSegmentCircleStartInside verifies a segment starting inside the circle
// uses the far root when the near root is behind the start
func TestSegmentCircleStartInside(t *testing.T) {
	t1, ok := SegmentCircle(10, 0, 20, 0, 10, 0, 3)
	if !ok {
		t.Fatal("expected exit intersection")
	}
	// Exit at x=13, so t = 3/10
	if math.Abs(t1-0.3) > 1e-9 {
		t.Errorf("expected t=0.3, got %f", t1)
	}
}

// TestSegmentCircleStopsShort verifies a segment ending before the circle
// reports no hit
func TestSegmentCircleStopsShort(t *testing.T) {
	if _, ok := SegmentCircle(0, 0, 5, 0, 10, 0, 3); ok {
		t.Error("expected no intersection for segment stopping short")
	}
}
