//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"drift/internal/sim"
)

// mouseTouch is the touch id the left mouse button drags under.
const mouseTouch sim.TouchID = -1

var arrowKeys = map[glfw.Key]sim.Key{
	glfw.KeyLeft:  sim.KeyLeft,
	glfw.KeyUp:    sim.KeyUp,
	glfw.KeyRight: sim.KeyRight,
	glfw.KeyDown:  sim.KeyDown,
}

// Input routes glfw callbacks into the simulation. Callbacks fire inside
// glfw.PollEvents, on the frame loop's goroutine.
type Input struct {
	sim      *sim.Sim
	dragging bool
}

func NewInput(window *glfw.Window, s *sim.Sim) *Input {
	in := &Input{sim: s}
	window.SetKeyCallback(in.onKey)
	window.SetMouseButtonCallback(in.onMouseButton)
	window.SetCursorPosCallback(in.onCursor)
	window.SetSizeCallback(in.onSize)
	return in
}

func (in *Input) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	k, ok := arrowKeys[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		in.sim.Input.KeyDown(k)
	case glfw.Release:
		in.sim.Input.KeyUp(k)
	}
}

// The left mouse button drags like a single finger.
func (in *Input) onMouseButton(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if btn != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		x, y := w.GetCursorPos()
		in.dragging = true
		in.sim.Input.TouchBegin(mouseTouch, x, y)
	case glfw.Release:
		in.dragging = false
		in.sim.Input.TouchEnd(mouseTouch)
	}
}

func (in *Input) onCursor(_ *glfw.Window, x, y float64) {
	if in.dragging {
		in.sim.Input.TouchMove(mouseTouch, x, y)
	}
}

func (in *Input) onSize(_ *glfw.Window, width, height int) {
	in.sim.RequestResize(width, height)
}
