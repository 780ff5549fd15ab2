package sim

import "math"

// Mark is a trail mark anchor in canvas pixels.
type Mark struct {
	X, Y float64
}

// ShouldStamp reports whether the car leaves tyre marks this frame. Marks
// need the car to be moving or braking, and are skipped when it runs at
// full power or full brake without spinning, so straight cruising stays
// clean.
func ShouldStamp(c *Car) bool {
	if !c.CanTurn() {
		return false
	}
	saturated := c.BrakingPower == MaxBrakingPower || c.Power == MaxPower
	if saturated && math.Abs(c.AngularVelocity) < TrailSpinThreshold {
		return false
	}
	return true
}

// WheelMarks returns the two mark anchors either side of the car.
func WheelMarks(c *Car) [2]Mark {
	sin, cos := math.Sincos(c.Angle)
	dx := cos * TrailWheelOffset
	dy := sin * TrailWheelOffset
	return [2]Mark{
		{X: c.X - dx, Y: c.Y - dy},
		{X: c.X + dx, Y: c.Y + dy},
	}
}

// StampTrail draws the car's wheel marks onto cv and reports whether it did.
func StampTrail(cv *Canvas, c *Car) bool {
	if !ShouldStamp(c) {
		return false
	}
	for _, m := range WheelMarks(c) {
		cv.Stamp(m.X, m.Y, c.Angle, TrailGrey, TrailAlpha)
	}
	return true
}
