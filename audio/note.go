package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}

// chromaticNames spells the chromatic scale with sharps
var chromaticNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// letterSemitones maps note letters to semitone offsets within an octave
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseNote converts scientific pitch notation ("C4", "F#3", "Bb2") to a
// MIDI note number. C4 = 60.
func ParseNote(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty note name")
	}

	s := strings.ToUpper(name[:1]) + name[1:]
	semi, ok := letterSemitones[s[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note letter in %q", name)
	}

	rest := s[1:]
	for len(rest) > 0 {
		if rest[0] == '#' {
			semi++
		} else if rest[0] == 'b' {
			semi--
		} else {
			break
		}
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in %q", name)
	}

	midi := (octave+1)*12 + semi
	if midi < 0 || midi >= 128 {
		return 0, fmt.Errorf("note %q out of MIDI range", name)
	}
	return midi, nil
}

// NoteName converts a MIDI note number to sharp-spelled scientific pitch
// notation. MIDI 60 = "C4".
func NoteName(midi int) string {
	if midi < 0 || midi >= 128 {
		return ""
	}
	return fmt.Sprintf("%s%d", chromaticNames[midi%12], midi/12-1)
}

// Transpose shifts a note name by the given number of semitones, carrying
// chroma overflow into the octave: Transpose("B4", 1) = "C5".
func Transpose(name string, semitones int) (string, error) {
	midi, err := ParseNote(name)
	if err != nil {
		return "", err
	}
	shifted := midi + semitones
	if shifted < 0 || shifted >= 128 {
		return "", fmt.Errorf("transpose of %q by %d out of range", name, semitones)
	}
	return NoteName(shifted), nil
}
