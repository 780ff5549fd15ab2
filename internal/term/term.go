// Package term runs the toy in a terminal: half-block canvas, arrow-glyph
// car, arrow keys or mouse drag for input.
package term

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"drift/internal/config"
	"drift/internal/events"
	"drift/internal/sim"
	"drift/internal/sound"
)

const tickInterval = 16 * time.Millisecond

// mouseTouch is the touch id mouse drags run under.
const mouseTouch sim.TouchID = 1

var arrowKeys = map[tcell.Key]sim.Key{
	tcell.KeyLeft:  sim.KeyLeft,
	tcell.KeyUp:    sim.KeyUp,
	tcell.KeyRight: sim.KeyRight,
	tcell.KeyDown:  sim.KeyDown,
}

type app struct {
	screen   tcell.Screen
	sim      *sim.Sim
	log      *slog.Logger
	engine   *sound.Engine
	bus      *events.EventBus
	start    time.Time
	dragging bool
}

// newApp sizes a simulation to screen, two sim pixels per cell row.
// engine may be nil.
func newApp(screen tcell.Screen, log *slog.Logger, engine *sound.Engine) *app {
	w, h := screen.Size()
	a := &app{
		screen: screen,
		sim:    sim.New(w, h*2),
		log:    log,
		engine: engine,
		bus:    events.NewEventBus(),
		start:  time.Now(),
	}
	a.sim.Clock.MaxFrame = sim.MaxFrameGap
	events.WireFrame(a.bus, log, engine)
	return a
}

// Run takes over the terminal until the user quits.
func Run(cfg config.Settings, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var engine *sound.Engine
	if !cfg.Mute {
		engine = sound.NewEngine()
		player := newAudioPlayer(engine)
		if err := player.Initialize(); err != nil {
			// Non-fatal, the toy runs silently.
			log.Warn("audio init failed, continuing without sound", "err", err)
			engine = nil
		} else {
			defer player.Cleanup()
		}
	}

	a := newApp(screen, log, engine)
	w, h := screen.Size()
	log.Info("terminal ready", "cols", w, "rows", h)

	evCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			evCh <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-evCh:
			if !a.handleEvent(ev) {
				log.Info("quit", "steps", a.sim.Clock.Steps())
				return nil
			}
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *app) now() time.Duration { return time.Since(a.start) }

// handleEvent applies one terminal event and reports whether to keep running.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if k, ok := arrowKeys[ev.Key()]; ok {
			a.sim.Input.HoldKey(k, a.now())
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		w, h := a.screen.Size()
		a.sim.RequestResize(w, h*2)
		a.screen.Sync()
	}
	return true
}

// handleMouse turns a button-1 drag into a single touch. Cell rows are two
// sim pixels tall.
func (a *app) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := float64(cx)+0.5, float64(cy*2)+1
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !a.dragging:
		a.dragging = true
		a.sim.Input.TouchBegin(mouseTouch, x, y)
	case pressed:
		a.sim.Input.TouchMove(mouseTouch, x, y)
	case a.dragging:
		a.dragging = false
		a.sim.Input.TouchEnd(mouseTouch)
	}
}

func (a *app) tick() {
	now := a.now()
	a.sim.Input.Expire(now)
	st := a.sim.Frame(now)
	a.bus.PublishFrame(st)
	events.FeedEngine(a.engine, &a.sim.Car)
	draw(a.screen, a.sim)
}
