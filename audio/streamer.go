package audio

import (
	"math"
	"sync/atomic"

	"github.com/perryradau/space-music/constant"
)

// liveParams holds the live tempo, transposition and master volume shared by every pattern
// streamer. Written from the input side, read from the streaming goroutine.
type liveParams struct {
	bpm       atomic.Int32
	transpose atomic.Int32
	volume    atomic.Uint64 // float64 bits
}

func newLiveParams(bpm int, volume float64) *liveParams {
	c := &liveParams{}
	c.bpm.Store(int32(bpm))
	c.volume.Store(math.Float64bits(volume))
	return c
}

func (c *liveParams) masterVolume() float64 {
	return math.Float64frombits(c.volume.Load())
}

func (c *liveParams) samplesPerStep() int {
	return constant.SamplesPerStep(int(c.bpm.Load()))
}

// heldNote tracks a sounding voice until its duration elapses
type heldNote struct {
	voice     *TonalVoice
	stepsLeft int
}

// patternStreamer renders a pattern as a beep.Streamer. Looping streamers
// play the pattern forever; one-shot streamers play a single pass and drain.
// All state is touched only from the speaker goroutine.
type patternStreamer struct {
	pattern *Pattern
	clock   *liveParams
	root    int // MIDI note of offset 0, before live transpose
	gain    float64
	loop    bool

	step     int
	pos      int // Samples into current step
	finished bool

	voices []*TonalVoice
	held   []heldNote
}

func newPatternStreamer(p *Pattern, clock *liveParams, gain float64, loop bool) *patternStreamer {
	root, err := ParseNote(p.Root)
	if err != nil {
		root = 60
	}
	s := &patternStreamer{
		pattern: p,
		clock:   clock,
		root:    root,
		gain:    gain,
		loop:    loop,
		voices:  make([]*TonalVoice, constant.MaxPolyphony),
	}
	for i := range s.voices {
		s.voices[i] = NewTonalVoice()
	}
	return s
}

func (s *patternStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	spStep := s.clock.samplesPerStep()
	master := s.clock.masterVolume()

	for i := range samples {
		if s.drained() {
			return i, i > 0
		}

		if s.pos == 0 && !s.finished {
			s.onStep()
		}

		var sum float64
		for _, v := range s.voices {
			if v.Active() {
				sum += v.Sample()
			}
		}
		sum *= s.gain * master
		samples[i][0] = sum
		samples[i][1] = sum

		s.pos++
		if s.pos >= spStep {
			s.pos = 0
			s.step++
			if s.step >= s.pattern.Length {
				if s.loop {
					s.step = 0
				} else {
					s.finished = true
				}
			}
		}
	}
	return len(samples), true
}

func (s *patternStreamer) Err() error { return nil }

// drained reports a one-shot that has played its pass and faded out
func (s *patternStreamer) drained() bool {
	if !s.finished {
		return false
	}
	for _, v := range s.voices {
		if v.Active() {
			return false
		}
	}
	return true
}

// onStep releases expired notes and triggers the ones due at this step
func (s *patternStreamer) onStep() {
	kept := s.held[:0]
	for _, h := range s.held {
		h.stepsLeft--
		if h.stepsLeft <= 0 {
			h.voice.Release()
			continue
		}
		kept = append(kept, h)
	}
	s.held = kept

	transpose := int(s.clock.transpose.Load())
	for _, trig := range s.pattern.Notes {
		if trig.Step != s.step {
			continue
		}
		v := s.allocateVoice()
		if v == nil {
			continue
		}
		// A stolen voice must shed its old hold entry
		for j := range s.held {
			if s.held[j].voice == v {
				s.held = append(s.held[:j], s.held[j+1:]...)
				break
			}
		}
		v.Trigger(VoiceParams{
			Note:     s.root + trig.Offset + transpose,
			Velocity: trig.Velocity,
			Timbre:   s.pattern.Timbre,
		})
		dur := trig.Duration
		if dur < 1 {
			dur = 1
		}
		s.held = append(s.held, heldNote{voice: v, stepsLeft: dur})
	}
}

// allocateVoice returns a free voice, stealing the most-decayed one when the
// pool is exhausted
func (s *patternStreamer) allocateVoice() *TonalVoice {
	for _, v := range s.voices {
		if !v.Active() {
			return v
		}
	}

	var oldest *TonalVoice
	lowestEnv := 2.0
	for _, v := range s.voices {
		if v.EnvLevel() < lowestEnv {
			lowestEnv = v.EnvLevel()
			oldest = v
		}
	}
	return oldest
}
