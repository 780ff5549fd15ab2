package sim

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestStepKeepsEngineInBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	c := NewCar(400, 300)
	for i := 0; i < 20000; i++ {
		ctl := ControlState{
			Up:    float64(r.IntN(2)) * r.Float64(),
			Down:  float64(r.IntN(2)),
			Left:  r.Float64(),
			Right: r.Float64(),
		}
		c.Step(ctl, 800, 600)
		if c.Power < 0 || c.Power > MaxPower {
			t.Fatalf("step %d: power = %v, want within [0, %v]", i, c.Power, MaxPower)
		}
		if c.BrakingPower < 0 || c.BrakingPower > MaxBrakingPower {
			t.Fatalf("step %d: braking = %v, want within [0, %v]", i, c.BrakingPower, MaxBrakingPower)
		}
		if c.X < 0 || c.X >= 800 || c.Y < 0 || c.Y >= 600 {
			t.Fatalf("step %d: position (%v, %v) escaped the viewport", i, c.X, c.Y)
		}
	}
}

func TestReleaseDecaysToRest(t *testing.T) {
	c := NewCar(400, 300)
	for i := 0; i < 600; i++ {
		c.Step(ControlState{Up: 1, Right: 1}, 800, 600)
	}
	if c.Speed() == 0 || c.AngularVelocity == 0 {
		t.Fatalf("car did not move: speed %v, angular %v", c.Speed(), c.AngularVelocity)
	}
	for i := 0; i < 2000; i++ {
		c.Step(ControlState{}, 800, 600)
	}
	if c.Power != 0 || c.BrakingPower != 0 {
		t.Fatalf("engine = (%v, %v), want (0, 0)", c.Power, c.BrakingPower)
	}
	if c.Speed() > 1e-12 {
		t.Fatalf("speed = %v, want ~0", c.Speed())
	}
	if math.Abs(c.AngularVelocity) > 1e-12 {
		t.Fatalf("angular velocity = %v, want ~0", c.AngularVelocity)
	}
}

func TestStepWrapsPosition(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		want  float64
	}{
		{"past right edge", 800, 10, 10},
		{"past left edge", 0, -5, 795},
		{"inside", 100, 3, 103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Car{X: tt.x, Y: 300, VX: tt.vx}
			c.Step(ControlState{}, 800, 600)
			if c.X != tt.want {
				t.Fatalf("x = %v, want %v", c.X, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{810, 800, 10},
		{-5, 800, 795},
		{800, 800, 0},
		{0, 800, 0},
		{42, 0, 42},
		{1700, 800, 900},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.size); got != tt.want {
			t.Errorf("wrap(%v, %v) = %v, want %v", tt.v, tt.size, got, tt.want)
		}
	}
}

func TestAccelerateMovesAlongHeading(t *testing.T) {
	c := NewCar(400, 300)
	for i := 0; i < 30; i++ {
		c.Step(ControlState{Up: 1}, 800, 600)
	}
	if c.Y >= 300 {
		t.Fatalf("y = %v, want the car to move up the screen", c.Y)
	}
	if c.X != 400 {
		t.Fatalf("x = %v, want 400 at heading 0", c.X)
	}
}

func TestNoTurningWhileNearlyStationary(t *testing.T) {
	c := NewCar(400, 300)
	// Two steps of throttle only reach 0.002 power, under the threshold.
	c.Step(ControlState{Up: 1, Left: 1}, 800, 600)
	c.Step(ControlState{Up: 1, Left: 1}, 800, 600)
	if c.AngularVelocity != 0 {
		t.Fatalf("angular velocity = %v, want 0 below the turn threshold", c.AngularVelocity)
	}
	c.Step(ControlState{Up: 1, Left: 1}, 800, 600)
	if c.AngularVelocity >= 0 {
		t.Fatalf("angular velocity = %v, want negative once moving", c.AngularVelocity)
	}
}

func TestSteeringInvertsWhenReversing(t *testing.T) {
	c := NewCar(400, 300)
	c.Step(ControlState{Down: 1, Right: 1}, 800, 600)
	if c.Direction() != -1 {
		t.Fatalf("direction = %v, want -1 while braking", c.Direction())
	}
	if c.AngularVelocity >= 0 {
		t.Fatalf("angular velocity = %v, want negative when reversing right", c.AngularVelocity)
	}
}

func TestTouchThrottleScalesPower(t *testing.T) {
	c := NewCar(400, 300)
	c.Step(ControlState{Up: 0.5}, 800, 600)
	if want := PowerFactor * 0.5; math.Abs(c.Power-want) > 1e-15 {
		t.Fatalf("power = %v, want %v", c.Power, want)
	}
	c = NewCar(400, 300)
	c.Step(ControlState{Down: 0.25}, 800, 600)
	if c.BrakingPower != BrakingFactor {
		t.Fatalf("braking = %v, want unscaled %v", c.BrakingPower, BrakingFactor)
	}
}

func TestCarReturnsAfterViewportShrink(t *testing.T) {
	c := NewCar(350, 10)
	steps := 0
	for c.X >= 100 {
		c.Step(ControlState{}, 100, 100)
		steps++
		if steps > 10 {
			t.Fatalf("x = %v after %d steps, want back inside [0, 100)", c.X, steps)
		}
	}
	if steps != 3 || c.X != 50 {
		t.Fatalf("x = %v after %d steps, want 50 after 3", c.X, steps)
	}
}
