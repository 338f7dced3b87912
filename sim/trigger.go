package sim

import (
	"math/rand"
	"time"
)

// Director is the audio engine boundary. The core addresses patterns purely
// by instrument id and stays agnostic to timbre and sample implementation.
type Director interface {
	// StartPattern plays one immediate rendition of the instrument's pattern
	// and installs a repeating loop, replacing any prior loop.
	StartPattern(id int)
	// StopPattern cancels the instrument's repeating loop.
	StopPattern(id int)
}

// NopDirector discards every pattern command. Used when audio is disabled
// and in tests.
type NopDirector struct{}

func (NopDirector) StartPattern(int) {}
func (NopDirector) StopPattern(int)  {}

// Trigger turns puck hits into state toggles and chained pucks.
type Trigger struct {
	field    *Field
	tracker  *Tracker
	director Director
	rng      *rand.Rand
}

// NewTrigger wires the state machine to its collaborators.
func NewTrigger(f *Field, tr *Tracker, d Director, rng *rand.Rand) *Trigger {
	return &Trigger{field: f, tracker: tr, director: d, rng: rng}
}

// OnHit toggles the struck instrument unconditionally: touchCount always
// increments, odd parity starts the pattern, even parity stops it. When
// chain is set, one new puck is spawned from the struck instrument to a
// uniformly random other instrument; with fewer than two instruments the
// chain is a no-op.
func (t *Trigger) OnHit(id int, chain bool, now time.Time) {
	in := t.field.ByID(id)
	if in == nil {
		return
	}

	in.TouchCount++
	if in.Active() {
		in.LastHit = now
		t.director.StartPattern(id)
	} else {
		t.director.StopPattern(id)
	}

	if chain {
		if to, ok := t.randomOther(id); ok {
			t.tracker.Spawn(t.field, id, to)
		}
	}
}

// randomOther picks a uniformly random instrument id different from exclude.
func (t *Trigger) randomOther(exclude int) (int, bool) {
	n := t.field.Count()
	if n < 2 {
		return 0, false
	}
	id := t.rng.Intn(n - 1)
	if id >= exclude {
		id++
	}
	return id, true
}
