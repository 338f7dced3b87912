package sim

import (
	"math"
	"testing"
)

// TestArrivalTick verifies the concrete scenario: two instruments 200 apart,
// puck speed 5, arrival threshold 40 -> the arrival fires on tick
// ceil((200-40)/5) = 32, not before
func TestArrivalTick(t *testing.T) {
	f := testField(1000, 1000,
		Instrument{X: 100, Y: 500, Radius: 3},
		Instrument{X: 300, Y: 500, Radius: 3},
	)
	tr := NewTracker(40)
	tr.Spawn(f, 0, 1)

	arrivedOn := -1
	for tick := 0; tick < 40; tick++ {
		hits := tr.Advance(f, 5)
		if len(hits) > 0 {
			if hits[0].Kind != HitArrival {
				t.Fatalf("expected arrival, got kind %d", hits[0].Kind)
			}
			if hits[0].Instrument != 1 {
				t.Fatalf("expected hit on target 1, got %d", hits[0].Instrument)
			}
			arrivedOn = tick
			break
		}
	}

	if arrivedOn != 32 {
		t.Errorf("expected arrival on tick 32, got %d", arrivedOn)
	}
	if tr.Len() != 0 {
		t.Errorf("expected puck consumed on arrival, %d remain", tr.Len())
	}
}

// TestPuckReaims verifies the path follows a moving target rather than the
// target's position at spawn time
func TestPuckReaims(t *testing.T) {
	// Threshold exceeds radius plus the per-tick step, so the arrival check
	// always fires before the puck can cross into the target's circle.
	f := testField(1000, 1000,
		Instrument{X: 100, Y: 100, Radius: 1},
		Instrument{X: 200, Y: 100, Radius: 1},
	)
	tr := NewTracker(5)
	tr.Spawn(f, 0, 1)

	// Move the target sideways; the puck must still reach it
	for tick := 0; tick < 500; tick++ {
		target := f.ByID(1)
		target.Y += 0.5

		hits := tr.Advance(f, 2)
		if len(hits) == 1 {
			if hits[0].Instrument != 1 || hits[0].Kind != HitArrival {
				t.Fatalf("expected arrival at instrument 1, got %+v", hits[0])
			}
			return
		}
	}
	t.Error("puck never reached the moving target")
}

// TestCollisionConsumesOnNonTarget verifies a grazed bystander receives the
// hit and the puck is discarded instead of continuing to its target
func TestCollisionConsumesOnNonTarget(t *testing.T) {
	f := testField(1000, 1000,
		Instrument{X: 0, Y: 100, Radius: 3},
		Instrument{X: 200, Y: 100, Radius: 3},
		Instrument{X: 50, Y: 100, Radius: 8}, // Blocker on the straight path
	)
	tr := NewTracker(5)
	tr.Spawn(f, 0, 1)

	var got *Hit
	for tick := 0; tick < 100 && got == nil; tick++ {
		hits := tr.Advance(f, 4)
		if len(hits) > 0 {
			got = &hits[0]
		}
	}

	if got == nil {
		t.Fatal("expected a hit")
	}
	if got.Kind != HitCollision {
		t.Errorf("expected collision kind, got %d", got.Kind)
	}
	if got.Instrument != 2 {
		t.Errorf("expected grazed instrument 2, got %d", got.Instrument)
	}
	if tr.Len() != 0 {
		t.Errorf("expected puck discarded after collision, %d remain", tr.Len())
	}
}

// TestNonFinitePuckDropped verifies corrupt coordinates drop the puck
// silently with no event
func TestNonFinitePuckDropped(t *testing.T) {
	f := testField(1000, 1000,
		Instrument{X: 100, Y: 100, Radius: 3},
		Instrument{X: 200, Y: 100, Radius: 3},
	)
	tr := NewTracker(5)
	tr.Spawn(f, 0, 1)
	tr.pucks[0].X = math.NaN()

	hits := tr.Advance(f, 4)
	if len(hits) != 0 {
		t.Errorf("expected no events from a corrupt puck, got %d", len(hits))
	}
	if tr.Len() != 0 {
		t.Errorf("expected corrupt puck dropped, %d remain", tr.Len())
	}
}

// TestDanglingTargetDropped verifies a puck whose target does not resolve is
// dropped silently
func TestDanglingTargetDropped(t *testing.T) {
	f := testField(1000, 1000,
		Instrument{X: 100, Y: 100, Radius: 3},
		Instrument{X: 200, Y: 100, Radius: 3},
	)
	tr := NewTracker(5)
	tr.Spawn(f, 0, 1)
	tr.pucks[0].To = 99

	hits := tr.Advance(f, 4)
	if len(hits) != 0 {
		t.Errorf("expected no events from a dangling puck, got %d", len(hits))
	}
	if tr.Len() != 0 {
		t.Errorf("expected dangling puck dropped, %d remain", tr.Len())
	}
}

// TestSpawnRejectsInvalid verifies self-sends and unknown ids never spawn
func TestSpawnRejectsInvalid(t *testing.T) {
	f := testField(1000, 1000,
		Instrument{X: 100, Y: 100, Radius: 3},
		Instrument{X: 200, Y: 100, Radius: 3},
	)
	tr := NewTracker(5)

	tr.Spawn(f, 0, 0)
	tr.Spawn(f, 0, 7)
	tr.Spawn(f, 7, 0)

	if tr.Len() != 0 {
		t.Errorf("expected no pucks from invalid spawns, got %d", tr.Len())
	}
}

// TestMultiplePucksIndependent verifies several pucks resolve in the same
// tick without disturbing each other
func TestMultiplePucksIndependent(t *testing.T) {
	f := testField(1000, 1000,
		Instrument{X: 100, Y: 100, Radius: 3},
		Instrument{X: 110, Y: 100, Radius: 3},
		Instrument{X: 500, Y: 500, Radius: 3},
	)
	tr := NewTracker(20)
	tr.Spawn(f, 0, 1) // Within threshold immediately
	tr.Spawn(f, 2, 0) // Far away, survives the tick

	hits := tr.Advance(f, 1)
	if len(hits) != 1 {
		t.Fatalf("expected one arrival, got %d", len(hits))
	}
	if hits[0].Instrument != 1 || hits[0].Kind != HitArrival {
		t.Errorf("unexpected hit %+v", hits[0])
	}
	if tr.Len() != 1 {
		t.Errorf("expected one surviving puck, got %d", tr.Len())
	}
}
