package sim

import "time"

// stepUnit is one step in accumulator units (nanoseconds × StepsPerSecond),
// which keeps the accumulator exact and makes step counts independent of
// how elapsed time is split across frames.
const stepUnit = int64(time.Second)

// Accumulator converts real frame timestamps into a count of fixed steps.
type Accumulator struct {
	// MaxFrame clamps the gap between two frames. Zero means unlimited.
	MaxFrame time.Duration

	started bool
	last    time.Duration
	acc     int64
	total   uint64
}

// Advance records a frame at time now and returns how many fixed steps are
// due. The first call only latches the timestamp.
func (a *Accumulator) Advance(now time.Duration) int {
	if !a.started {
		a.started = true
		a.last = now
		return 0
	}
	dt := now - a.last
	a.last = now
	if dt < 0 {
		dt = 0
	}
	if a.MaxFrame > 0 && dt > a.MaxFrame {
		dt = a.MaxFrame
	}
	a.acc += int64(dt) * StepsPerSecond

	// Steps run while the accumulator strictly exceeds one step.
	if a.acc <= stepUnit {
		return 0
	}
	n := (a.acc - 1) / stepUnit
	a.acc -= n * stepUnit
	a.total += uint64(n)
	return int(n)
}

// Steps is the number of fixed steps issued so far.
func (a *Accumulator) Steps() uint64 { return a.total }

// Pending is the unconsumed simulated time.
func (a *Accumulator) Pending() time.Duration {
	return time.Duration(a.acc / StepsPerSecond)
}
