// Package audio synthesizes the instrument patterns. It implements the
// simulation's Director boundary on top of gopxl/beep: starting a pattern
// plays one immediate rendition and installs a repeating loop, stopping it
// disposes the loop.
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/perryradau/space-music/constant"
	"github.com/perryradau/space-music/vmath"
)

// patternGain keeps several simultaneous loops below clipping
const patternGain = 0.35

// Engine owns the speaker, the mixer and one loop slot per instrument.
type Engine struct {
	cfg    *Config
	live   *liveParams
	mixer  *beep.Mixer
	loops  map[int]*beep.Ctrl
	silent atomic.Bool

	mu          sync.Mutex // Protects loops
	initialized bool
}

// NewEngine creates an engine from config. Call Start before use.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		cfg:   cfg,
		live:  newLiveParams(cfg.BPM, cfg.Volume),
		mixer: &beep.Mixer{},
		loops: make(map[int]*beep.Ctrl),
	}
	e.silent.Store(!cfg.Enabled)
	return e
}

// Start opens the speaker. Failure is not fatal: the engine falls back to
// silent mode and every pattern command becomes a no-op.
func (e *Engine) Start() error {
	if e.initialized || e.silent.Load() {
		return nil
	}

	sr := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(50*time.Millisecond)); err != nil {
		e.silent.Store(true)
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Stop disposes every loop and closes the speaker.
func (e *Engine) Stop() {
	if !e.initialized {
		return
	}

	speaker.Lock()
	for id, ctrl := range e.loops {
		ctrl.Streamer = nil
		delete(e.loops, id)
	}
	speaker.Unlock()

	speaker.Close()
	e.initialized = false
}

// StartPattern triggers one immediate rendition of the instrument's pattern
// and installs its repeating loop, replacing any prior loop for that id.
func (e *Engine) StartPattern(id int) {
	if !e.ready() {
		return
	}

	p := PatternFor(id)
	oneShot := newPatternStreamer(p, e.live, patternGain, false)
	loop := &beep.Ctrl{Streamer: newPatternStreamer(p, e.live, patternGain, true)}

	e.mu.Lock()
	defer e.mu.Unlock()

	speaker.Lock()
	if old, ok := e.loops[id]; ok {
		old.Streamer = nil
	}
	e.loops[id] = loop
	e.mixer.Add(oneShot, loop)
	speaker.Unlock()
}

// StopPattern disposes the instrument's repeating loop. No one-shot plays
// on stop.
func (e *Engine) StopPattern(id int) {
	if !e.ready() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	speaker.Lock()
	if ctrl, ok := e.loops[id]; ok {
		ctrl.Streamer = nil
		delete(e.loops, id)
	}
	speaker.Unlock()
}

func (e *Engine) ready() bool {
	return e.initialized && !e.silent.Load()
}

// Silent reports whether the engine is muted or failed to open the speaker.
func (e *Engine) Silent() bool {
	return e.silent.Load()
}

// BPM returns the live tempo.
func (e *Engine) BPM() int {
	return int(e.live.bpm.Load())
}

// SetBPM updates the live tempo, clamped to the supported range. Running
// loops pick it up at their next sample.
func (e *Engine) SetBPM(bpm int) {
	if bpm < constant.MinBPM {
		bpm = constant.MinBPM
	} else if bpm > constant.MaxBPM {
		bpm = constant.MaxBPM
	}
	e.live.bpm.Store(int32(bpm))
}

// Transpose returns the live transposition in semitones.
func (e *Engine) Transpose() int {
	return int(e.live.transpose.Load())
}

// SetTranspose shifts every pattern by the given semitones, clamped. Notes
// already sounding keep their pitch; new triggers use the shifted root.
func (e *Engine) SetTranspose(semitones int) {
	if semitones < constant.MinTranspose {
		semitones = constant.MinTranspose
	} else if semitones > constant.MaxTranspose {
		semitones = constant.MaxTranspose
	}
	e.live.transpose.Store(int32(semitones))
}

// SetVolume updates the live master volume (0.0-1.0).
func (e *Engine) SetVolume(vol float64) {
	e.live.volume.Store(math.Float64bits(vmath.Clamp(vol, 0, 1)))
}

// Volume returns the live master volume.
func (e *Engine) Volume() float64 {
	return e.live.masterVolume()
}
