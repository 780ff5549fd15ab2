package sim

import (
	"image"
	"time"
)

// Sim is the whole toy: input, car, clock, canvas and resize transition.
// It is owned by one frame loop; event handlers must run on that loop's
// goroutine.
type Sim struct {
	Input  *Aggregator
	Car    Car
	Clock  Accumulator
	Canvas *Canvas

	resize   ResizeMachine
	snapshot *Snapshot
	width    int
	height   int
}

// FrameStats describes what one Frame call did.
type FrameStats struct {
	Steps       int
	Stamped     bool
	ResizeBegan bool
	Resized     bool
	Width       int
	Height      int
}

// New creates a w×h toy with the car parked in the centre. The canvas is
// sized by the first frame through the regular resize transition.
func New(w, h int) *Sim {
	s := &Sim{
		Input:  NewAggregator(float64(w), float64(h)),
		Car:    NewCar(float64(w)/2, float64(h)/2),
		Canvas: NewCanvas(0, 0),
		width:  w,
		height: h,
	}
	s.resize.Request(w, h)
	return s
}

// Size is the current viewport size, which the car wraps within.
func (s *Sim) Size() (int, int) { return s.width, s.height }

// ResizeState is the current phase of the canvas resize transition.
func (s *Sim) ResizeState() ResizeState { return s.resize.State() }

// RequestResize handles a viewport resize event. The car wraps within the
// new size from the next step; the canvas follows once its snapshot loads.
func (s *Sim) RequestResize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.width, s.height = w, h
	s.Input.SetViewport(float64(w), float64(h))
	s.resize.Request(w, h)
}

// Frame runs the fixed steps due at time now, then the render-side work:
// finishing a loaded resize, starting a pending one and stamping the trail.
func (s *Sim) Frame(now time.Duration) FrameStats {
	var st FrameStats
	st.Steps = s.Clock.Advance(now)
	w, h := float64(s.width), float64(s.height)
	for i := 0; i < st.Steps; i++ {
		s.Car.Step(s.Input.Mode().Controls(), w, h)
	}

	if s.snapshot != nil {
		if img, ok := s.snapshot.Poll(); ok {
			s.finishResize(img)
			st.Resized = true
		}
	}
	if s.resize.Begin() {
		s.snapshot = TakeSnapshot(s.Canvas)
		st.ResizeBegan = true
	}

	st.Stamped = StampTrail(s.Canvas, &s.Car)
	st.Width, st.Height = s.Canvas.Width(), s.Canvas.Height()
	return st
}

// AwaitResize blocks until an in-flight snapshot loads and applies it.
func (s *Sim) AwaitResize() bool {
	if s.snapshot == nil {
		return false
	}
	s.finishResize(s.snapshot.Wait())
	return true
}

func (s *Sim) finishResize(img *image.RGBA) {
	s.snapshot = nil
	w, h, ok := s.resize.Loaded()
	if !ok {
		return
	}
	s.Canvas.Resize(w, h)
	s.Canvas.DrawBackdrop(img, BackdropAlpha)
}

// Pose is the car's visual transform: centre position and rotation in radians.
func (s *Sim) Pose() (x, y, angle float64) {
	return s.Car.X, s.Car.Y, s.Car.Angle
}
