// Space Music: mobile instrument nodes bounce around the terminal while
// notes travel between them, toggling looping patterns on every hit.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/perryradau/space-music/audio"
	"github.com/perryradau/space-music/constant"
	"github.com/perryradau/space-music/render"
	"github.com/perryradau/space-music/sim"
)

type app struct {
	screen tcell.Screen
	engine *audio.Engine
	world  *sim.Simulation
}

func newApp() (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	cfg := loadAppConfig()
	rng := rand.New(rand.NewSource(cfg.Seed))

	engine := audio.NewEngine(audio.LoadConfig())
	if err := engine.Start(); err != nil {
		// Non-fatal, the arena can run without sound
		log.Printf("audio initialization failed: %v", err)
	}

	width, height := screen.Size()
	simCfg := sim.DefaultConfig(float64(width), float64(height-1))
	simCfg.Nodes = cfg.Nodes

	world := sim.New(simCfg, engine, rng)
	world.Start()

	return &app{screen: screen, engine: engine, world: world}, nil
}

func (a *app) run() {
	ticker := time.NewTicker(constant.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			a.world.Tick(now)
			render.Draw(a.screen, a.world.Snapshot(), now, a.status())
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			// A click on a node sends a note from it to a random other
			if id, ok := a.world.InstrumentAt(float64(x), float64(y)); ok {
				a.world.SendNoteRandom(id)
			}
		}

	case *tcell.EventResize:
		width, height := a.screen.Size()
		a.world.Resize(float64(width), float64(height-1))
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	params := a.world.Params()
	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		if a.world.Running() {
			a.world.Quit()
		} else {
			a.world.Restart()
		}
	case '+', '=':
		params.PuckSpeed += constant.SpeedMultiplierStep
		a.world.SetParams(params)
	case '-':
		params.PuckSpeed -= constant.SpeedMultiplierStep
		a.world.SetParams(params)
	case '>':
		params.NodeSpeed += constant.SpeedMultiplierStep
		a.world.SetParams(params)
	case '<':
		params.NodeSpeed -= constant.SpeedMultiplierStep
		a.world.SetParams(params)
	case ']':
		a.engine.SetBPM(a.engine.BPM() + 5)
	case '[':
		a.engine.SetBPM(a.engine.BPM() - 5)
	case '.':
		a.engine.SetTranspose(a.engine.Transpose() + 1)
	case ',':
		a.engine.SetTranspose(a.engine.Transpose() - 1)
	}
	return true
}

func (a *app) status() string {
	state := "running"
	if !a.world.Running() {
		state = "stopped"
	}
	p := a.world.Params()
	return fmt.Sprintf(
		" %s | bpm %d | transpose %+d | puck x%.1f | node x%.1f | space stop/start  +/- </> [/] ,/.  q quit",
		state, a.engine.BPM(), a.engine.Transpose(), p.PuckSpeed, p.NodeSpeed)
}

func (a *app) cleanup() {
	a.engine.Stop()
	a.screen.Fini()
}

func main() {
	app, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
