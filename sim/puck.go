package sim

import (
	"github.com/perryradau/space-music/vmath"
)

// HitKind distinguishes how a puck resolved. Both kinds toggle and chain the
// same way; the distinction is kept for logging and tests.
type HitKind int

const (
	// HitArrival means the puck came within the arrival threshold of its target
	HitArrival HitKind = iota
	// HitCollision means the puck's path crossed another instrument's circle
	HitCollision
)

// Hit is an event emitted when a puck resolves against an instrument.
type Hit struct {
	Instrument int
	Kind       HitKind
}

// Puck is a traveling note: a point moving from a source instrument toward a
// target. It is consumed on arrival or on touching any instrument other than
// its source.
type Puck struct {
	From, To int
	X, Y     float64
}

// Tracker owns the set of in-flight pucks.
type Tracker struct {
	arrivalThreshold float64
	pucks            []Puck
}

// NewTracker creates a tracker with the given arrival threshold.
func NewTracker(arrivalThreshold float64) *Tracker {
	return &Tracker{arrivalThreshold: arrivalThreshold}
}

// Spawn adds a puck traveling from the source instrument's center.
func (tr *Tracker) Spawn(f *Field, from, to int) {
	src := f.ByID(from)
	if src == nil || f.ByID(to) == nil || from == to {
		return
	}
	tr.pucks = append(tr.pucks, Puck{From: from, To: to, X: src.X, Y: src.Y})
}

// Len returns the number of in-flight pucks.
func (tr *Tracker) Len() int {
	return len(tr.pucks)
}

// Clear drops every in-flight puck.
func (tr *Tracker) Clear() {
	tr.pucks = tr.pucks[:0]
}

// Each calls fn for every in-flight puck.
func (tr *Tracker) Each(fn func(*Puck)) {
	for i := range tr.pucks {
		fn(&tr.pucks[i])
	}
}

// Advance moves every puck toward its target's current center and resolves
// arrivals and collisions, returning the hits in resolution order. Targets
// move, so each puck re-aims every tick. Removal is deferred to the end of
// the pass so indices stay stable while iterating.
func (tr *Tracker) Advance(f *Field, puckSpeed float64) []Hit {
	var hits []Hit
	kept := tr.pucks[:0]

	for i := range tr.pucks {
		p := tr.pucks[i]

		// Defensive drops: corrupt coordinates or a target that no longer
		// resolves. Neither should occur in a normal session.
		if !vmath.Finite(p.X, p.Y) {
			continue
		}
		target := f.ByID(p.To)
		if target == nil {
			continue
		}

		remaining := vmath.Distance(p.X, p.Y, target.X, target.Y)

		// Arrival short-circuits before any movement or collision test.
		if remaining <= tr.arrivalThreshold {
			hits = append(hits, Hit{Instrument: p.To, Kind: HitArrival})
			continue
		}

		step := puckSpeed
		if remaining < step {
			step = remaining
		}
		dx, dy := vmath.Normalize(target.X-p.X, target.Y-p.Y)
		nx := p.X + dx*step
		ny := p.Y + dy*step

		// The grazed instrument wins even when it is not the target; the
		// puck is consumed either way.
		if id, _, ok := firstHit(f, p.X, p.Y, nx, ny, p.From); ok {
			hits = append(hits, Hit{Instrument: id, Kind: HitCollision})
			continue
		}

		p.X, p.Y = nx, ny
		kept = append(kept, p)
	}

	tr.pucks = kept
	return hits
}
