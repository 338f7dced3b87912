package constant

// Audio hardware settings
const (
	AudioSampleRate = 44100
)

// Tempo
const (
	DefaultBPM = 120
	MinBPM     = 40
	MaxBPM     = 240

	// StepsPerBeat subdivides a beat into sixteenth notes
	StepsPerBeat = 4
)

// SamplesPerStep returns the length of one sequencer step in samples
func SamplesPerStep(bpm int) int {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return AudioSampleRate * 60 / (bpm * StepsPerBeat)
}

// Transposition bounds, semitones
const (
	MinTranspose = -24
	MaxTranspose = 24
)

// MaxPolyphony is the voice pool size per pattern loop
const MaxPolyphony = 4

// Envelope settings per timbre, seconds except sustain level
const (
	BassAttack  = 0.005
	BassDecay   = 0.25
	BassSustain = 0.3
	BassRelease = 0.15

	PianoAttack  = 0.002
	PianoDecay   = 0.4
	PianoSustain = 0.0
	PianoRelease = 0.2

	PadAttack  = 0.15
	PadDecay   = 0.3
	PadSustain = 0.6
	PadRelease = 0.5

	PluckAttack  = 0.001
	PluckDecay   = 0.12
	PluckSustain = 0.0
	PluckRelease = 0.08

	BellAttack  = 0.002
	BellDecay   = 0.8
	BellSustain = 0.0
	BellRelease = 0.3
)
