package sim

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"
)

func TestAccumulatorFirstFrameOnlyLatches(t *testing.T) {
	var a Accumulator
	if n := a.Advance(5 * time.Second); n != 0 {
		t.Fatalf("first frame ran %d steps, want 0", n)
	}
	if n := a.Advance(5*time.Second + StepDuration); n != 0 {
		t.Fatalf("frame shorter than one step ran %d steps, want 0", n)
	}
	if n := a.Advance(5*time.Second + time.Second); n != 119 {
		t.Fatalf("one second ran %d steps, want 119 (strictly more than a step must remain)", n)
	}
	if got := a.Steps(); got != 119 {
		t.Fatalf("total steps = %d, want 119", got)
	}
	if got := a.Pending(); got != StepDuration {
		t.Fatalf("pending = %v, want one step %v", got, StepDuration)
	}
}

func TestAccumulatorClampsLongFrames(t *testing.T) {
	a := Accumulator{MaxFrame: 250 * time.Millisecond}
	a.Advance(0)
	n := a.Advance(10 * time.Second)
	if n > 30 {
		t.Fatalf("ran %d steps after a 10s stall, want at most 30", n)
	}
}

func TestAccumulatorIgnoresBackwardsTime(t *testing.T) {
	var a Accumulator
	a.Advance(time.Second)
	if n := a.Advance(0); n != 0 {
		t.Fatalf("ran %d steps for negative elapsed time", n)
	}
}

// runSplit drives a sim with fixed controls through frames at the given
// timestamps and returns the final car.
func runSplit(stamps []time.Duration) Car {
	s := New(800, 600)
	s.Input.KeyDown(KeyUp)
	s.Input.KeyDown(KeyLeft)
	for _, ts := range stamps {
		s.Frame(ts)
	}
	return s.Car
}

func TestFixedStepDeterminismAcrossFrameSplits(t *testing.T) {
	const total = 3 * time.Second

	even := []time.Duration{0}
	for ts := time.Duration(0); ts < total; {
		ts += time.Second / 60
		if ts > total {
			ts = total
		}
		even = append(even, ts)
	}

	r := rand.New(rand.NewPCG(1, 2))
	jittered := []time.Duration{0, total}
	for i := 0; i < 97; i++ {
		jittered = append(jittered, time.Duration(r.Int64N(int64(total))))
	}
	slices.Sort(jittered)

	single := []time.Duration{0, total}

	want := runSplit(even)
	if want.Speed() == 0 {
		t.Fatal("reference run did not move the car")
	}
	for name, stamps := range map[string][]time.Duration{"jittered": jittered, "single": single} {
		if got := runSplit(stamps); got != want {
			t.Errorf("%s split: car = %+v, want %+v", name, got, want)
		}
	}
}
