package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/calwren/lifeline/asset"
	"github.com/calwren/lifeline/audio"
	"github.com/calwren/lifeline/input"
	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/render"
	"github.com/calwren/lifeline/sector"
)

// tickControls samples the hold-window input state at the moment the
// simulation asks
type tickControls struct {
	state *input.State
}

func (c tickControls) Held(a input.Action) bool {
	return c.state.Held(a, time.Now())
}

type game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	keys     *input.State
	sound    *audio.Manager
	sec      *sector.Sector
	showMap  bool
}

func seedFromEnv() int64 {
	if v := os.Getenv("LIFELINE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return time.Now().UnixNano()
}

func newGame() (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	keys := input.NewState()
	sound := audio.NewManager(audio.ConfigFromEnv())
	// A dead speaker degrades to silence; the game runs either way
	_ = sound.Initialize()

	assets := asset.NewRegistry()
	sec, err := sector.New(sector.Config{
		Seed:     seedFromEnv(),
		Controls: tickControls{state: keys},
		Audio:    sound,
		Assets:   assets,
	})
	if err != nil {
		screen.Fini()
		return nil, err
	}

	return &game{
		screen:   screen,
		renderer: render.New(screen, assets),
		keys:     keys,
		sound:    sound,
		sec:      sec,
	}, nil
}

// handleInput feeds key events into the hold-window state. Returns false
// when the game should exit.
func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, ok := input.Decode(ev)
		if !ok {
			return true
		}
		switch action {
		case input.ActionQuit:
			return false
		case input.ActionPause:
			g.sec.SetPaused(!g.sec.Paused())
			g.keys.Clear()
		default:
			g.keys.Press(action, time.Now())
		}

	case *tcell.EventResize:
		g.renderer.HandleResize()
		g.screen.Sync()
	}
	return true
}

func (g *game) run() error {
	tickInterval := float64(time.Second) * parameter.DT
	ticker := time.NewTicker(time.Duration(tickInterval))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return nil
			}

		case <-ticker.C:
			if err := g.sec.Logic(); err != nil {
				return err
			}
			g.showMap = g.keys.Held(input.ActionShowMap, time.Now())
			g.renderer.Draw(g.sec, g.showMap)
		}
	}
}

func (g *game) cleanup() {
	g.sound.Cleanup()
	g.screen.Fini()
}

func main() {
	game, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	if err := game.run(); err != nil {
		game.cleanup()
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}
