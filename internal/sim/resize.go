package sim

// ResizeState is the phase of the canvas resize transition.
type ResizeState int

const (
	ResizeIdle   ResizeState = iota
	ResizeNeeded             // viewport changed, snapshot not yet taken
	Resizing                 // snapshot taken, waiting for it to load
)

func (s ResizeState) String() string {
	switch s {
	case ResizeIdle:
		return "idle"
	case ResizeNeeded:
		return "needed"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// ResizeMachine sequences Idle → Needed → Resizing → Idle. Requests that
// arrive while Resizing are deferred and replayed once the snapshot loads.
type ResizeMachine struct {
	state    ResizeState
	w, h     int
	deferred bool
}

func (m *ResizeMachine) State() ResizeState { return m.state }

// Request records a viewport resize to w×h. The newest size always wins.
func (m *ResizeMachine) Request(w, h int) {
	m.w, m.h = w, h
	switch m.state {
	case ResizeIdle:
		m.state = ResizeNeeded
	case Resizing:
		m.deferred = true
	}
}

// Begin moves Needed to Resizing. It returns true when the caller must
// capture a snapshot of the current canvas.
func (m *ResizeMachine) Begin() bool {
	if m.state != ResizeNeeded {
		return false
	}
	m.state = Resizing
	return true
}

// Loaded completes a resize once the snapshot is ready and returns the size
// to apply. ok is false when no resize was in flight.
func (m *ResizeMachine) Loaded() (w, h int, ok bool) {
	if m.state != Resizing {
		return 0, 0, false
	}
	if m.deferred {
		m.deferred = false
		m.state = ResizeNeeded
	} else {
		m.state = ResizeIdle
	}
	return m.w, m.h, true
}
