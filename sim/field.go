package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/perryradau/space-music/constant"
	"github.com/perryradau/space-music/vmath"
)

// Instrument is a mobile circular node with on/off state driven by touch
// parity. Instruments are created once at layout time and live for the whole
// session; touchCount only ever increases.
type Instrument struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Radius float64

	Color      int // Palette slot, fixed at layout time
	Label      string
	TouchCount int
	LastHit    time.Time
}

// Active reports the parity interpretation of the cumulative hit count.
func (in *Instrument) Active() bool {
	return in.TouchCount%2 == 1
}

// Field owns the instrument set and the arena bounds.
type Field struct {
	Width, Height float64
	instruments   []Instrument
}

// defaultLabels names the instrument slots after their pattern timbres.
var defaultLabels = []string{"BAS", "ARP", "PAD", "PLK", "BEL", "SEQ"}

// NewField lays out n instruments on a ring centered in the arena, each with
// a random non-zero initial velocity drawn from rng.
func NewField(width, height float64, n int, rng *rand.Rand) *Field {
	f := &Field{
		Width:       width,
		Height:      height,
		instruments: make([]Instrument, n),
	}

	ring := constant.LayoutRadiusRatio * math.Min(width, height)
	cx, cy := width/2, height/2

	for i := range f.instruments {
		angle := 2 * math.Pi * float64(i) / float64(n)

		// Speed drawn above a positive floor and direction from a unit
		// angle, so the velocity vector is never zero.
		speed := constant.NodeSpeedMin + rng.Float64()*(constant.NodeSpeedMax-constant.NodeSpeedMin)
		dir := rng.Float64() * 2 * math.Pi

		f.instruments[i] = Instrument{
			ID:     i,
			X:      cx + ring*math.Cos(angle),
			Y:      cy + ring*math.Sin(angle),
			VX:     speed * math.Cos(dir),
			VY:     speed * math.Sin(dir),
			Radius: constant.NodeRadius,
			Color:  i,
			Label:  defaultLabels[i%len(defaultLabels)],
		}
	}
	f.clampAll()
	return f
}

// Advance moves every instrument by velocity*speedScale, independently per
// axis, reflecting elastically off the arena walls. Runs before puck movement
// each tick so collision tests see current positions.
func (f *Field) Advance(speedScale float64) {
	for i := range f.instruments {
		in := &f.instruments[i]
		in.X += in.VX * speedScale
		in.Y += in.VY * speedScale

		if in.X < in.Radius {
			in.X = in.Radius
			in.VX = -in.VX
		} else if in.X > f.Width-in.Radius {
			in.X = f.Width - in.Radius
			in.VX = -in.VX
		}

		if in.Y < in.Radius {
			in.Y = in.Radius
			in.VY = -in.VY
		} else if in.Y > f.Height-in.Radius {
			in.Y = f.Height - in.Radius
			in.VY = -in.VY
		}
	}
}

// Resize updates the arena bounds and clamps instruments back inside. It
// never teleports a node, only pulls it to the nearest legal position.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
	f.clampAll()
}

func (f *Field) clampAll() {
	for i := range f.instruments {
		in := &f.instruments[i]
		in.X = vmath.Clamp(in.X, in.Radius, math.Max(in.Radius, f.Width-in.Radius))
		in.Y = vmath.Clamp(in.Y, in.Radius, math.Max(in.Radius, f.Height-in.Radius))
	}
}

// ByID returns the instrument with the given id, or nil if out of range.
func (f *Field) ByID(id int) *Instrument {
	if id < 0 || id >= len(f.instruments) {
		return nil
	}
	return &f.instruments[id]
}

// Count returns the number of instruments.
func (f *Field) Count() int {
	return len(f.instruments)
}

// Each calls fn for every instrument in id order.
func (f *Field) Each(fn func(*Instrument)) {
	for i := range f.instruments {
		fn(&f.instruments[i])
	}
}
