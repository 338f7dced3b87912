// Package sim implements the motion, collision and trigger-propagation
// engine: instruments bouncing inside an arena, pucks traveling between
// them, and the toggle/chaining state machine that turns hits into sound.
package sim

import (
	"log"
	"math/rand"
	"time"

	"github.com/perryradau/space-music/constant"
	"github.com/perryradau/space-music/vmath"
)

// Params are the live user multipliers. They are read fresh every tick so
// input changes apply immediately without touching the tick rate.
type Params struct {
	PuckSpeed float64 // multiplier on the base puck speed
	NodeSpeed float64 // multiplier on instrument velocities
}

// Config sizes a new simulation.
type Config struct {
	Width, Height    float64
	Nodes            int
	ArrivalThreshold float64
	BasePuckSpeed    float64
}

// DefaultConfig returns a config for the given arena size.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:            width,
		Height:           height,
		Nodes:            constant.DefaultNodeCount,
		ArrivalThreshold: constant.ArrivalThreshold,
		BasePuckSpeed:    constant.DefaultPuckSpeed,
	}
}

// Simulation is the single context object owning all mutable arena state.
// All of it is mutated only inside Tick (and the lifecycle methods), on one
// goroutine; external readers only ever see completed-tick snapshots.
type Simulation struct {
	field   *Field
	tracker *Tracker
	trigger *Trigger
	rng     *rand.Rand

	basePuckSpeed float64
	params        Params
	running       bool
}

// New builds a simulation. The rng is injected so chaining and idle
// replenishment are reproducible under test.
func New(cfg Config, director Director, rng *rand.Rand) *Simulation {
	field := NewField(cfg.Width, cfg.Height, cfg.Nodes, rng)
	tracker := NewTracker(cfg.ArrivalThreshold)
	return &Simulation{
		field:         field,
		tracker:       tracker,
		trigger:       NewTrigger(field, tracker, director, rng),
		rng:           rng,
		basePuckSpeed: cfg.BasePuckSpeed,
		params:        Params{PuckSpeed: 1, NodeSpeed: 1},
	}
}

// Tick advances the world by one frame: instrument motion, puck resolution,
// trigger propagation, then idle replenishment. A panicking sub-step is
// logged and abandoned; the loop must keep animating on the next frame.
func (s *Simulation) Tick(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tick recovered: %v", r)
		}
	}()

	p := s.params

	s.field.Advance(p.NodeSpeed)

	hits := s.tracker.Advance(s.field, s.basePuckSpeed*p.PuckSpeed)
	for _, h := range hits {
		s.trigger.OnHit(h.Instrument, true, now)
	}

	// A running arena never goes permanently silent: replace the last
	// consumed puck with a fresh random one.
	if s.running && s.tracker.Len() == 0 {
		s.spawnRandom()
	}
}

func (s *Simulation) spawnRandom() {
	n := s.field.Count()
	if n < 2 {
		return
	}
	from := s.rng.Intn(n)
	to, ok := s.trigger.randomOther(from)
	if !ok {
		return
	}
	s.tracker.Spawn(s.field, from, to)
}

// SendNote spawns a puck on user request, e.g. a click resolved to an
// instrument. Independent of the idle check.
func (s *Simulation) SendNote(from, to int) {
	s.tracker.Spawn(s.field, from, to)
}

// SendNoteRandom spawns a puck from the given instrument to a random other.
func (s *Simulation) SendNoteRandom(from int) {
	if to, ok := s.trigger.randomOther(from); ok {
		s.tracker.Spawn(s.field, from, to)
	}
}

// Start sets the running flag; the next tick replenishes an idle arena.
func (s *Simulation) Start() {
	s.running = true
}

// Quit halts replenishment, clears all in-flight pucks and disposes every
// instrument's active pattern. Touch counts are preserved: they only ever
// increase for the lifetime of an instrument.
func (s *Simulation) Quit() {
	s.running = false
	s.tracker.Clear()
	s.field.Each(func(in *Instrument) {
		if in.Active() {
			s.trigger.director.StopPattern(in.ID)
		}
	})
}

// Restart resumes replenishment and seeds the arena with one fresh puck.
func (s *Simulation) Restart() {
	s.running = true
	s.spawnRandom()
}

// Running reports the lifecycle flag.
func (s *Simulation) Running() bool {
	return s.running
}

// Resize clamps the instruments into the new arena bounds.
func (s *Simulation) Resize(width, height float64) {
	s.field.Resize(width, height)
}

// Params returns the current live multipliers.
func (s *Simulation) Params() Params {
	return s.params
}

// SetParams replaces the live multipliers, clamped to sane bounds.
func (s *Simulation) SetParams(p Params) {
	p.PuckSpeed = vmath.Clamp(p.PuckSpeed, constant.SpeedMultiplierMin, constant.SpeedMultiplierMax)
	p.NodeSpeed = vmath.Clamp(p.NodeSpeed, constant.SpeedMultiplierMin, constant.SpeedMultiplierMax)
	s.params = p
}

// InstrumentAt resolves a point to the id of the instrument whose circle
// contains it, for pointer input. Returns false when the point is empty
// arena.
func (s *Simulation) InstrumentAt(x, y float64) (int, bool) {
	found := -1
	s.field.Each(func(in *Instrument) {
		if found < 0 && vmath.DistanceSq(x, y, in.X, in.Y) <= in.Radius*in.Radius {
			found = in.ID
		}
	})
	return found, found >= 0
}

// Snapshot copies the arena state for the renderer.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Width:       s.field.Width,
		Height:      s.field.Height,
		Running:     s.running,
		Instruments: make([]InstrumentState, 0, s.field.Count()),
		Pucks:       make([]PuckState, 0, s.tracker.Len()),
	}
	s.field.Each(func(in *Instrument) {
		snap.Instruments = append(snap.Instruments, InstrumentState{
			ID:      in.ID,
			X:       in.X,
			Y:       in.Y,
			Radius:  in.Radius,
			Color:   in.Color,
			Label:   in.Label,
			Active:  in.Active(),
			LastHit: in.LastHit,
		})
	})
	s.tracker.Each(func(p *Puck) {
		snap.Pucks = append(snap.Pucks, PuckState{X: p.X, Y: p.Y})
	})
	return snap
}
