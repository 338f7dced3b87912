// Package render draws a simulation snapshot onto a tcell screen. It knows
// nothing about motion or collision; everything it needs is in the snapshot.
package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/perryradau/space-music/sim"
)

// hitFlashDuration is how long a freshly struck node stays highlighted
const hitFlashDuration = 300 * time.Millisecond

// palette maps the snapshot's color slots to terminal colors
var palette = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorPurple,
	tcell.ColorYellow,
	tcell.ColorTeal,
	tcell.ColorFuchsia,
	tcell.ColorOlive,
	tcell.ColorMaroon,
}

func colorFor(slot int) tcell.Color {
	if slot < 0 {
		slot = -slot
	}
	return palette[slot%len(palette)]
}

// Draw renders one frame: arena nodes, in-flight pucks and the status line.
func Draw(screen tcell.Screen, snap sim.Snapshot, now time.Time, status string) {
	screen.Clear()

	for _, in := range snap.Instruments {
		drawInstrument(screen, in, now)
	}

	for _, p := range snap.Pucks {
		screen.SetContent(int(p.X), int(p.Y), '•', nil,
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}

	drawStatus(screen, status)
	screen.Show()
}

func drawInstrument(screen tcell.Screen, in sim.InstrumentState, now time.Time) {
	color := colorFor(in.Color)

	style := tcell.StyleDefault.Foreground(color)
	fill := '·'
	if in.Active {
		style = style.Bold(true)
		fill = '▒'
	}
	// Flash on a fresh hit
	if in.Active && now.Sub(in.LastHit) < hitFlashDuration {
		style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		fill = '█'
	}

	cx, cy := int(in.X), int(in.Y)
	r := int(in.Radius)

	// Terminal cells are roughly twice as tall as wide; doubling dy keeps
	// the node visually round.
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+(dy*2)*(dy*2) > r*r {
				continue
			}
			screen.SetContent(cx+dx, cy+dy, fill, nil, style)
		}
	}

	// Center label, reverse video when playing
	labelStyle := style
	if in.Active {
		labelStyle = labelStyle.Reverse(true)
	}
	start := cx - len(in.Label)/2
	for i, ch := range in.Label {
		screen.SetContent(start+i, cy, ch, nil, labelStyle)
	}
}

func drawStatus(screen tcell.Screen, status string) {
	width, height := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, ch := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, ch, nil, style)
	}
}
