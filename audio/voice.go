package audio

import (
	"math"

	"github.com/perryradau/space-music/constant"
)

// Timbre selects the synthesis model for a voice
type Timbre int

const (
	TimbreBass Timbre = iota
	TimbrePiano
	TimbrePad
	TimbrePluck
	TimbreBell
)

// VoiceParams contains trigger parameters
type VoiceParams struct {
	Note     int     // MIDI note
	Velocity float64 // 0.0-1.0
	Timbre   Timbre
}

// ADSRState tracks envelope phase
type ADSRState int

const (
	ADSRIdle ADSRState = iota
	ADSRAttack
	ADSRDecay
	ADSRSustain
	ADSRRelease
)

// TonalVoice generates pitched sounds with an ADSR envelope. It is sampled
// only from the audio streaming goroutine.
type TonalVoice struct {
	timbre   Timbre
	note     int
	freq     float64
	velocity float64
	phase    float64 // Oscillator phase 0-1

	envState    ADSRState
	envLevel    float64
	envPos      int     // Samples into current phase
	attack      int     // Samples
	decay       int     // Samples
	sustain     float64 // Level 0-1
	release     int     // Samples
	releaseFrom float64 // Envelope level when release began

	filterState float64 // For filter sweep
	modPhase    float64 // For FM

	active    bool
	releasing bool
}

// NewTonalVoice creates an idle voice
func NewTonalVoice() *TonalVoice {
	return &TonalVoice{}
}

func (v *TonalVoice) Sample() float64 {
	if !v.active {
		return 0
	}

	var raw float64
	switch v.timbre {
	case TimbreBass:
		raw = v.generateBass()
	case TimbrePiano:
		raw = v.generatePiano()
	case TimbrePad:
		raw = v.generatePad()
	case TimbrePluck:
		raw = v.generatePluck()
	case TimbreBell:
		raw = v.generateBell()
	default:
		raw = math.Sin(2 * math.Pi * v.phase)
	}

	v.phase += v.freq / float64(constant.AudioSampleRate)
	if v.phase >= 1.0 {
		v.phase -= 1.0
	}

	env := v.processEnvelope()
	if v.envState == ADSRIdle {
		v.active = false
		return 0
	}

	return raw * env * v.velocity
}

func (v *TonalVoice) processEnvelope() float64 {
	switch v.envState {
	case ADSRAttack:
		if v.attack > 0 {
			v.envLevel = float64(v.envPos) / float64(v.attack)
		} else {
			v.envLevel = 1.0
		}
		v.envPos++
		if v.envPos >= v.attack {
			v.envState = ADSRDecay
			v.envPos = 0
		}

	case ADSRDecay:
		if v.decay > 0 {
			t := float64(v.envPos) / float64(v.decay)
			v.envLevel = 1.0 - t*(1.0-v.sustain)
		} else {
			v.envLevel = v.sustain
		}
		v.envPos++
		if v.envPos >= v.decay {
			if v.sustain > 0 {
				v.envState = ADSRSustain
			} else {
				v.envState = ADSRRelease
				v.releaseFrom = v.envLevel
				v.envPos = 0
			}
		}

	case ADSRSustain:
		v.envLevel = v.sustain
		// Stay here until Release() called

	case ADSRRelease:
		if v.release > 0 {
			t := float64(v.envPos) / float64(v.release)
			v.envLevel = v.releaseFrom * (1.0 - t)
		} else {
			v.envLevel = 0
		}
		v.envPos++
		if v.envPos >= v.release || v.envLevel <= 0.001 {
			v.envState = ADSRIdle
			v.envLevel = 0
		}
	}

	return v.envLevel
}

func (v *TonalVoice) generateBass() float64 {
	// Saw wave through a one-pole low-pass that closes as the note decays
	saw := 2.0*v.phase - 1.0
	cutoff := 0.3 - 0.2*v.envLevel
	v.filterState += cutoff * (saw - v.filterState)
	return v.filterState
}

func (v *TonalVoice) generatePiano() float64 {
	// FM synthesis: harmonic modulator, index decays with the envelope
	modRatio := 2.0
	modIndex := 3.0 * v.envLevel

	modFreq := v.freq * modRatio
	v.modPhase += modFreq / float64(constant.AudioSampleRate)
	if v.modPhase >= 1.0 {
		v.modPhase -= 1.0
	}

	mod := math.Sin(2 * math.Pi * v.modPhase)
	return math.Sin(2*math.Pi*v.phase + modIndex*mod)
}

func (v *TonalVoice) generatePad() float64 {
	// Detuned oscillators for thick sound
	detune := 0.003 // 3 cents
	phase2 := v.phase * (1.0 + detune)
	phase3 := v.phase * (1.0 - detune)

	osc1 := math.Sin(2 * math.Pi * v.phase)
	osc2 := math.Sin(2 * math.Pi * phase2)
	osc3 := math.Sin(2 * math.Pi * phase3)

	return (osc1 + osc2 + osc3) / 3.0
}

func (v *TonalVoice) generatePluck() float64 {
	// Bright saw with a fast-closing filter, koto-like
	saw := 2.0*v.phase - 1.0
	cutoff := 0.05 + 0.6*v.envLevel
	v.filterState += cutoff * (saw - v.filterState)
	return v.filterState
}

func (v *TonalVoice) generateBell() float64 {
	// Inharmonic FM for a metallic strike
	modRatio := 3.5
	modIndex := 4.0 * v.envLevel

	modFreq := v.freq * modRatio
	v.modPhase += modFreq / float64(constant.AudioSampleRate)
	if v.modPhase >= 1.0 {
		v.modPhase -= 1.0
	}

	mod := math.Sin(2 * math.Pi * v.modPhase)
	return math.Sin(2*math.Pi*v.phase + modIndex*mod)
}

func (v *TonalVoice) Active() bool {
	return v.active
}

func (v *TonalVoice) Trigger(params VoiceParams) {
	v.timbre = params.Timbre
	v.note = params.Note
	v.freq = NoteFreq(params.Note)
	v.velocity = params.Velocity
	v.phase = 0
	v.modPhase = 0
	v.filterState = 0

	sr := float64(constant.AudioSampleRate)
	switch params.Timbre {
	case TimbreBass:
		v.attack = int(constant.BassAttack * sr)
		v.decay = int(constant.BassDecay * sr)
		v.sustain = constant.BassSustain
		v.release = int(constant.BassRelease * sr)
	case TimbrePiano:
		v.attack = int(constant.PianoAttack * sr)
		v.decay = int(constant.PianoDecay * sr)
		v.sustain = constant.PianoSustain
		v.release = int(constant.PianoRelease * sr)
	case TimbrePad:
		v.attack = int(constant.PadAttack * sr)
		v.decay = int(constant.PadDecay * sr)
		v.sustain = constant.PadSustain
		v.release = int(constant.PadRelease * sr)
	case TimbrePluck:
		v.attack = int(constant.PluckAttack * sr)
		v.decay = int(constant.PluckDecay * sr)
		v.sustain = constant.PluckSustain
		v.release = int(constant.PluckRelease * sr)
	case TimbreBell:
		v.attack = int(constant.BellAttack * sr)
		v.decay = int(constant.BellDecay * sr)
		v.sustain = constant.BellSustain
		v.release = int(constant.BellRelease * sr)
	default:
		v.attack = int(0.01 * sr)
		v.decay = int(0.1 * sr)
		v.sustain = 0.5
		v.release = int(0.2 * sr)
	}

	v.envState = ADSRAttack
	v.envPos = 0
	v.envLevel = 0
	v.active = true
	v.releasing = false
}

func (v *TonalVoice) Release() {
	if v.active && !v.releasing {
		v.releasing = true
		v.envState = ADSRRelease
		v.releaseFrom = v.envLevel
		v.envPos = 0
	}
}

func (v *TonalVoice) Reset() {
	v.active = false
	v.releasing = false
	v.envState = ADSRIdle
	v.envLevel = 0
}

func (v *TonalVoice) Note() int {
	return v.note
}

func (v *TonalVoice) EnvLevel() float64 {
	return v.envLevel
}
