package sim

import "math"

// Car is the kinematic and engine state of the toy car. Screen coordinates:
// x grows right, y grows down, angle 0 points up and grows clockwise.
type Car struct {
	X, Y            float64
	VX, VY          float64
	Angle           float64
	AngularVelocity float64

	Power        float64
	BrakingPower float64
}

// NewCar returns a car at rest at (x, y).
func NewCar(x, y float64) Car {
	return Car{X: x, Y: y}
}

// Step advances the car by one fixed timestep and wraps it into the
// w×h viewport.
func (c *Car) Step(ctl ControlState, w, h float64) {
	if ctl.Up > 0 {
		c.Power += PowerFactor * ctl.Up
	} else {
		c.Power -= PowerFactor
	}
	if ctl.Down > 0 {
		c.BrakingPower += BrakingFactor
	} else {
		c.BrakingPower -= BrakingFactor
	}
	c.Power = clampF(c.Power, 0, MaxPower)
	c.BrakingPower = clampF(c.BrakingPower, 0, MaxBrakingPower)

	direction := c.Direction()

	// No steering while nearly stationary.
	if c.CanTurn() {
		if ctl.Left > 0 {
			c.AngularVelocity -= direction * TurnSpeed * ctl.Left
		}
		if ctl.Right > 0 {
			c.AngularVelocity += direction * TurnSpeed * ctl.Right
		}
	}

	thrust := c.Power - c.BrakingPower
	c.VX += math.Sin(c.Angle) * thrust
	c.VY += math.Cos(c.Angle) * thrust

	c.X += c.VX
	c.Y -= c.VY
	c.VX *= Drag
	c.VY *= Drag
	c.Angle += c.AngularVelocity
	c.AngularVelocity *= AngularDrag

	c.X = wrap(c.X, w)
	c.Y = wrap(c.Y, h)
}

// Direction is 1 while the engine beats the brakes and -1 otherwise, so
// steering inverts when reversing.
func (c *Car) Direction() float64 {
	if c.Power > c.BrakingPower {
		return 1
	}
	return -1
}

// CanTurn reports whether the car is moving enough to steer. The trail
// uses the same rule.
func (c *Car) CanTurn() bool {
	return c.Power > TurnThreshold || c.BrakingPower != 0
}

// Speed is the magnitude of the velocity in pixels per step.
func (c *Car) Speed() float64 {
	return math.Hypot(c.VX, c.VY)
}
