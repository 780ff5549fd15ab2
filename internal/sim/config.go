package sim

import "time"

// Engine.
const (
	MaxPower        = 0.01
	MaxBrakingPower = 0.0375
	PowerFactor     = 0.001
	BrakingFactor   = 0.0005
)

// Handling.
const (
	Drag          = 0.95
	AngularDrag   = 0.95
	TurnSpeed     = 0.001
	TurnThreshold = 0.0025 // below this power the car cannot steer
)

// Fixed timestep: StepsPerSecond updates per second of real time.
const (
	StepsPerSecond = 120
	StepDuration   = time.Second / StepsPerSecond
)

// Trail marks.
const (
	TrailWheelOffset   = 4.0
	TrailSpinThreshold = 0.002 // |angular velocity| under this at full power draws nothing
	TrailAlpha         = 0.25
	TrailGrey          = 64
)

// BackdropAlpha is applied to the previous frame when it is redrawn after a resize.
const BackdropAlpha = 0.85

// Touch drag: a drag across a third of the viewport saturates a signal.
const TouchDragFraction = 3.0

// KeyHoldWindow keeps a key down after its last press on inputs
// that never report releases.
const KeyHoldWindow = 180 * time.Millisecond

// MaxFrameGap is the clamp frontends put on a single frame's elapsed time,
// so a stall (window drag, app switch) does not fast-forward the car.
const MaxFrameGap = 250 * time.Millisecond
