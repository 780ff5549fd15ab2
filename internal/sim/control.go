package sim

// Key is a DOM-compatible key code. Frontends translate their native key
// identifiers into these.
type Key int

const (
	KeyLeft  Key = 37
	KeyUp    Key = 38
	KeyRight Key = 39
	KeyDown  Key = 40
)

// ControlState is the normalized per-step control input. Every field is in [0,1].
type ControlState struct {
	Up, Down, Left, Right float64
}

// InputMode is the live input source, resolved once per step.
// It is either a KeyboardMode or a TouchMode.
type InputMode interface {
	Controls() ControlState
	isInputMode()
}

// KeyboardMode carries binary arrow-key signals.
type KeyboardMode struct {
	Up, Down, Left, Right bool
}

// TouchMode carries continuous drag magnitudes.
type TouchMode struct {
	Drag ControlState
}

func (KeyboardMode) isInputMode() {}
func (TouchMode) isInputMode()    {}

func (k KeyboardMode) Controls() ControlState {
	return ControlState{
		Up:    boolSignal(k.Up),
		Down:  boolSignal(k.Down),
		Left:  boolSignal(k.Left),
		Right: boolSignal(k.Right),
	}
}

func (t TouchMode) Controls() ControlState {
	return ControlState{
		Up:    clampF(t.Drag.Up, 0, 1),
		Down:  clampF(t.Drag.Down, 0, 1),
		Left:  clampF(t.Drag.Left, 0, 1),
		Right: clampF(t.Drag.Right, 0, 1),
	}
}

func boolSignal(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
