// Package events fans a frame's outcome out to the logger and the engine
// voice. Every frontend publishes through the same bus.
package events

import (
	"log/slog"

	"drift/internal/sim"
	"drift/internal/sound"
)

type EventType int

const (
	EventResizeBegan EventType = iota
	EventResized
	EventSkid
)

type Event struct {
	Type          EventType
	Width, Height int
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// PublishFrame turns a frame's stats into events.
func (eb *EventBus) PublishFrame(st sim.FrameStats) {
	if st.ResizeBegan {
		eb.Emit(Event{Type: EventResizeBegan, Width: st.Width, Height: st.Height})
	}
	if st.Resized {
		eb.Emit(Event{Type: EventResized, Width: st.Width, Height: st.Height})
	}
	if st.Stamped {
		eb.Emit(Event{Type: EventSkid})
	}
}

// WireFrame subscribes the logger and the engine voice. engine may be nil.
func WireFrame(eb *EventBus, log *slog.Logger, engine *sound.Engine) {
	eb.Subscribe(EventResizeBegan, func(e Event) {
		log.Debug("resize snapshot taken", "canvas_w", e.Width, "canvas_h", e.Height)
	})
	eb.Subscribe(EventResized, func(e Event) {
		log.Debug("canvas resized", "w", e.Width, "h", e.Height)
	})
	if engine != nil {
		eb.Subscribe(EventSkid, func(Event) { engine.Skid() })
	}
}

// FeedEngine publishes the car's throttle and brake to the voice. engine may be nil.
func FeedEngine(engine *sound.Engine, c *sim.Car) {
	if engine == nil {
		return
	}
	engine.Set(c.Power/sim.MaxPower, c.BrakingPower/sim.MaxBrakingPower)
}
