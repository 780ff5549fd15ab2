package sim

import "time"

// TouchID identifies a touch sequence. Frontends pass whatever their
// platform uses (x/mobile touch.Sequence, a mouse button, ...).
type TouchID int64

// Aggregator collects keyboard and touch events into the current InputMode.
// Event handlers and Mode are called from the same goroutine as the frame loop.
type Aggregator struct {
	keys  map[Key]bool
	holds map[Key]time.Duration // last press time for hold-emulated keys

	touchActive bool
	touchID     TouchID
	prevX       float64
	prevY       float64
	drag        ControlState

	width, height float64
}

func NewAggregator(w, h float64) *Aggregator {
	return &Aggregator{
		keys:   make(map[Key]bool),
		holds:  make(map[Key]time.Duration),
		width:  w,
		height: h,
	}
}

// SetViewport updates the dimensions used to normalize drag deltas.
func (a *Aggregator) SetViewport(w, h float64) {
	a.width = w
	a.height = h
}

func (a *Aggregator) KeyDown(k Key) {
	if !isArrow(k) {
		return
	}
	a.keys[k] = true
}

func (a *Aggregator) KeyUp(k Key) {
	if !isArrow(k) {
		return
	}
	a.keys[k] = false
	delete(a.holds, k)
}

// HoldKey presses k and keeps it down until Expire sees no repeat for
// KeyHoldWindow. Used by terminals, which report presses but not releases.
func (a *Aggregator) HoldKey(k Key, now time.Duration) {
	if !isArrow(k) {
		return
	}
	a.keys[k] = true
	a.holds[k] = now
}

// Expire releases hold-emulated keys whose last press is older than KeyHoldWindow.
func (a *Aggregator) Expire(now time.Duration) {
	for k, t := range a.holds {
		if now-t > KeyHoldWindow {
			a.keys[k] = false
			delete(a.holds, k)
		}
	}
}

// TouchBegin starts tracking a touch. A second finger is ignored while the
// first is down.
func (a *Aggregator) TouchBegin(id TouchID, x, y float64) {
	if a.touchActive {
		return
	}
	a.touchActive = true
	a.touchID = id
	a.prevX = x
	a.prevY = y
}

// TouchMove converts the drag delta since the previous move into signal
// changes. Dragging a third of the viewport saturates a signal.
func (a *Aggregator) TouchMove(id TouchID, x, y float64) {
	if !a.touchActive || id != a.touchID {
		return
	}
	dx := x - a.prevX
	dy := y - a.prevY
	a.prevX = x
	a.prevY = y

	var ny, nx float64
	if a.height > 0 {
		ny = dy / (a.height / TouchDragFraction)
	}
	if a.width > 0 {
		nx = dx / (a.width / TouchDragFraction)
	}
	a.drag.Up = clampF(a.drag.Up-ny, 0, 1)
	a.drag.Down = clampF(a.drag.Down+ny, 0, 1)
	a.drag.Left = clampF(a.drag.Left-nx, 0, 1)
	a.drag.Right = clampF(a.drag.Right+nx, 0, 1)
}

// TouchEnd releases every touch signal and returns to keyboard mode.
func (a *Aggregator) TouchEnd(id TouchID) {
	if !a.touchActive || id != a.touchID {
		return
	}
	a.touchActive = false
	a.drag = ControlState{}
}

// Touching reports whether touch mode is live.
func (a *Aggregator) Touching() bool { return a.touchActive }

// Mode returns the live input source. Keyboard state is ignored while a
// touch is active.
func (a *Aggregator) Mode() InputMode {
	if a.touchActive {
		return TouchMode{Drag: a.drag}
	}
	return KeyboardMode{
		Up:    a.keys[KeyUp],
		Down:  a.keys[KeyDown],
		Left:  a.keys[KeyLeft],
		Right: a.keys[KeyRight],
	}
}

func isArrow(k Key) bool {
	return k >= KeyLeft && k <= KeyDown
}
