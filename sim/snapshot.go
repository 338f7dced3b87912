package sim

import "time"

// InstrumentState is the render-facing view of one instrument.
type InstrumentState struct {
	ID      int
	X, Y    float64
	Radius  float64
	Color   int // Palette slot assigned at layout time
	Label   string
	Active  bool
	LastHit time.Time
}

// PuckState is the render-facing view of one traveling note.
type PuckState struct {
	X, Y float64
}

// Snapshot is a read-only copy of the arena taken after a full tick. The
// renderer draws from it without any knowledge of motion or collision
// internals.
type Snapshot struct {
	Width, Height float64
	Running       bool
	Instruments   []InstrumentState
	Pucks         []PuckState
}
