package sim

import (
	"math/rand"
	"testing"
	"time"
)

// recordingDirector captures pattern commands for assertions
type recordingDirector struct {
	started []int
	stopped []int
}

func (d *recordingDirector) StartPattern(id int) { d.started = append(d.started, id) }
func (d *recordingDirector) StopPattern(id int)  { d.stopped = append(d.stopped, id) }

// TestTouchParity verifies active == (touchCount % 2 == 1) after every event
// and that the director sees start/stop alternation
func TestTouchParity(t *testing.T) {
	f := testField(100, 100,
		Instrument{X: 20, Y: 50, Radius: 3},
		Instrument{X: 80, Y: 50, Radius: 3},
	)
	tr := NewTracker(5)
	dir := &recordingDirector{}
	trig := NewTrigger(f, tr, dir, rand.New(rand.NewSource(1)))

	now := time.Now()
	for i := 1; i <= 5; i++ {
		trig.OnHit(0, false, now)

		in := f.ByID(0)
		if in.TouchCount != i {
			t.Fatalf("event %d: expected touchCount=%d, got %d", i, i, in.TouchCount)
		}
		if in.Active() != (i%2 == 1) {
			t.Fatalf("event %d: parity mismatch, touchCount=%d active=%v", i, in.TouchCount, in.Active())
		}
	}

	if len(dir.started) != 3 {
		t.Errorf("expected 3 pattern starts, got %d", len(dir.started))
	}
	if len(dir.stopped) != 2 {
		t.Errorf("expected 2 pattern stops, got %d", len(dir.stopped))
	}
}

// TestLastHitOnlyOnActivation verifies lastHitTime is recorded on odd parity
// transitions only
func TestLastHitOnlyOnActivation(t *testing.T) {
	f := testField(100, 100,
		Instrument{X: 20, Y: 50, Radius: 3},
		Instrument{X: 80, Y: 50, Radius: 3},
	)
	trig := NewTrigger(f, NewTracker(5), &recordingDirector{}, rand.New(rand.NewSource(1)))

	t1 := time.Unix(100, 0)
	t2 := time.Unix(200, 0)

	trig.OnHit(0, false, t1)
	if got := f.ByID(0).LastHit; !got.Equal(t1) {
		t.Errorf("expected lastHit=%v after activation, got %v", t1, got)
	}

	trig.OnHit(0, false, t2)
	if got := f.ByID(0).LastHit; !got.Equal(t1) {
		t.Errorf("deactivation must not touch lastHit: expected %v, got %v", t1, got)
	}
}

// TestChainingSpawnsOneToOther verifies every chained event spawns exactly
// one puck targeting a different instrument
func TestChainingSpawnsOneToOther(t *testing.T) {
	f := testField(100, 100,
		Instrument{X: 20, Y: 20, Radius: 3},
		Instrument{X: 80, Y: 20, Radius: 3},
		Instrument{X: 50, Y: 80, Radius: 3},
	)
	tr := NewTracker(5)
	rng := rand.New(rand.NewSource(7))
	trig := NewTrigger(f, tr, &recordingDirector{}, rng)

	for i := 0; i < 200; i++ {
		tr.Clear()
		struck := i % 3
		trig.OnHit(struck, true, time.Now())

		if tr.Len() != 1 {
			t.Fatalf("event %d: expected exactly one chained puck, got %d", i, tr.Len())
		}
		tr.Each(func(p *Puck) {
			if p.From != struck {
				t.Fatalf("event %d: chained puck from %d, expected %d", i, p.From, struck)
			}
			if p.To == struck {
				t.Fatalf("event %d: chained puck targets the struck instrument", i)
			}
			if f.ByID(p.To) == nil {
				t.Fatalf("event %d: chained puck targets unknown id %d", i, p.To)
			}
		})
	}
}

// TestChainTargetUniform verifies the random other choice covers all other
// instruments
func TestChainTargetUniform(t *testing.T) {
	f := testField(100, 100,
		Instrument{X: 20, Y: 20, Radius: 3},
		Instrument{X: 80, Y: 20, Radius: 3},
		Instrument{X: 50, Y: 80, Radius: 3},
		Instrument{X: 50, Y: 40, Radius: 3},
	)
	tr := NewTracker(5)
	trig := NewTrigger(f, tr, &recordingDirector{}, rand.New(rand.NewSource(11)))

	seen := map[int]int{}
	for i := 0; i < 3000; i++ {
		tr.Clear()
		trig.OnHit(0, true, time.Now())
		tr.Each(func(p *Puck) { seen[p.To]++ })
	}

	for _, id := range []int{1, 2, 3} {
		if seen[id] == 0 {
			t.Errorf("target %d never chosen", id)
		}
		// Uniform across 3 targets: expect ~1000 each, allow wide slack
		if seen[id] < 700 || seen[id] > 1300 {
			t.Errorf("target %d chosen %d times, outside uniform range", id, seen[id])
		}
	}
	if seen[0] != 0 {
		t.Errorf("struck instrument chosen as chain target %d times", seen[0])
	}
}

// TestChainNoOpSingleInstrument verifies chaining degrades to a no-op with
// fewer than two instruments
func TestChainNoOpSingleInstrument(t *testing.T) {
	f := testField(100, 100, Instrument{X: 50, Y: 50, Radius: 3})
	tr := NewTracker(5)
	trig := NewTrigger(f, tr, &recordingDirector{}, rand.New(rand.NewSource(1)))

	trig.OnHit(0, true, time.Now())

	if tr.Len() != 0 {
		t.Errorf("expected no chained puck with a single instrument, got %d", tr.Len())
	}
	if got := f.ByID(0).TouchCount; got != 1 {
		t.Errorf("toggle must still apply: expected touchCount=1, got %d", got)
	}
}
