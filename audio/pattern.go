package audio

// NoteTrigger defines one note event within a pattern
type NoteTrigger struct {
	Step     int
	Offset   int // Semitones relative to the pattern root
	Velocity float64
	Duration int // Steps held before release
}

// Pattern is a repeating phrase bound to an instrument slot
type Pattern struct {
	Name   string
	Timbre Timbre
	Length int    // Steps per cycle
	Root   string // Scientific pitch of offset 0
	Notes  []NoteTrigger
}

// builtinPatterns is the fixed pattern bank; instrument slot i plays
// builtinPatterns[i % len]. Roots share a D minor pentatonic flavor so any
// chance combination of active instruments stays consonant.
var builtinPatterns = []Pattern{
	{
		Name:   "BAS",
		Timbre: TimbreBass,
		Length: 16,
		Root:   "D2",
		Notes: []NoteTrigger{
			{Step: 0, Offset: 0, Velocity: 0.9, Duration: 3},
			{Step: 6, Offset: 0, Velocity: 0.6, Duration: 1},
			{Step: 8, Offset: 7, Velocity: 0.8, Duration: 3},
			{Step: 14, Offset: 5, Velocity: 0.6, Duration: 1},
		},
	},
	{
		Name:   "ARP",
		Timbre: TimbrePiano,
		Length: 16,
		Root:   "D4",
		Notes: []NoteTrigger{
			{Step: 0, Offset: 0, Velocity: 0.8, Duration: 2},
			{Step: 4, Offset: 3, Velocity: 0.7, Duration: 2},
			{Step: 8, Offset: 7, Velocity: 0.7, Duration: 2},
			{Step: 12, Offset: 12, Velocity: 0.6, Duration: 2},
		},
	},
	{
		Name:   "PAD",
		Timbre: TimbrePad,
		Length: 32,
		Root:   "D3",
		Notes: []NoteTrigger{
			{Step: 0, Offset: 0, Velocity: 0.5, Duration: 14},
			{Step: 16, Offset: 5, Velocity: 0.5, Duration: 14},
		},
	},
	{
		Name:   "PLK",
		Timbre: TimbrePluck,
		Length: 16,
		Root:   "A4",
		Notes: []NoteTrigger{
			{Step: 2, Offset: 0, Velocity: 0.7, Duration: 1},
			{Step: 6, Offset: -2, Velocity: 0.6, Duration: 1},
			{Step: 10, Offset: 3, Velocity: 0.7, Duration: 1},
			{Step: 14, Offset: 5, Velocity: 0.5, Duration: 1},
		},
	},
	{
		Name:   "BEL",
		Timbre: TimbreBell,
		Length: 32,
		Root:   "D5",
		Notes: []NoteTrigger{
			{Step: 0, Offset: 0, Velocity: 0.6, Duration: 4},
			{Step: 12, Offset: 7, Velocity: 0.5, Duration: 4},
			{Step: 24, Offset: 10, Velocity: 0.4, Duration: 4},
		},
	},
	{
		Name:   "SEQ",
		Timbre: TimbrePluck,
		Length: 16,
		Root:   "D4",
		Notes: []NoteTrigger{
			{Step: 0, Offset: 0, Velocity: 0.6, Duration: 1},
			{Step: 2, Offset: 3, Velocity: 0.5, Duration: 1},
			{Step: 4, Offset: 5, Velocity: 0.6, Duration: 1},
			{Step: 6, Offset: 7, Velocity: 0.5, Duration: 1},
			{Step: 8, Offset: 10, Velocity: 0.6, Duration: 1},
			{Step: 10, Offset: 7, Velocity: 0.5, Duration: 1},
			{Step: 12, Offset: 5, Velocity: 0.6, Duration: 1},
			{Step: 14, Offset: 3, Velocity: 0.5, Duration: 1},
		},
	},
}

// PatternFor returns the pattern bound to an instrument slot
func PatternFor(id int) *Pattern {
	if id < 0 {
		id = 0
	}
	return &builtinPatterns[id%len(builtinPatterns)]
}

// PatternName returns the display label of an instrument slot's pattern
func PatternName(id int) string {
	return PatternFor(id).Name
}
