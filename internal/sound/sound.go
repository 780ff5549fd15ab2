// Package sound synthesizes the car's engine note. The synthesizer is
// backend-neutral: oto reads it as float32 stereo bytes and beep pulls it
// as [2]float64 frames.
package sound

import (
	"io"
	"math"
	"sync/atomic"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Engine voice.
const (
	idleFreq   = 38.0  // Hz at zero throttle
	revFreq    = 150.0 // extra Hz at full throttle
	idleGain   = 0.10
	revGain    = 0.35
	hissGain   = 0.25
	squealFreq = 870.0
	squealGain = 0.12
	skidDecay  = 4.0  // per second
	paramSlew  = 6.0  // per second, how fast the voice follows its targets
	volume     = 0.55 // master
)

// atomicFloat is a float64 shared between the frame loop and the audio
// goroutine.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *atomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// Swap stores v and returns the previous value.
func (f *atomicFloat) Swap(v float64) float64 {
	return math.Float64frombits(f.bits.Swap(math.Float64bits(v)))
}

// Engine is a procedural engine tone with brake hiss and tyre squeal.
// Set and Skid are called from the frame loop; Read and Stream from the
// audio backend's goroutine.
type Engine struct {
	throttle atomicFloat
	brake    atomicFloat
	skid     atomicFloat

	// Audio goroutine state.
	phase    float64
	sqPhase  float64
	curThr   float64
	curBrake float64
	curSkid  float64
	lp       float64
	seed     uint64
}

func NewEngine() *Engine {
	return &Engine{seed: 0x5EED}
}

// Set publishes the normalized throttle and brake levels, each in [0,1].
func (e *Engine) Set(throttle, brake float64) {
	e.throttle.Set(clamp01(throttle))
	e.brake.Set(clamp01(brake))
}

// Skid restarts the tyre squeal at full strength.
func (e *Engine) Skid() { e.skid.Set(1) }

// Next produces one stereo frame.
func (e *Engine) Next() (left, right float64) {
	const dt = 1.0 / SampleRate
	e.curThr = approach(e.curThr, e.throttle.Get(), paramSlew*dt)
	e.curBrake = approach(e.curBrake, e.brake.Get(), paramSlew*dt)

	// Skid decays on the audio side; the frame loop only re-arms it.
	if s := e.skid.Swap(0); s > e.curSkid {
		e.curSkid = s
	}
	e.curSkid = math.Max(0, e.curSkid-skidDecay*dt)

	freq := idleFreq + revFreq*e.curThr
	e.phase += freq * dt
	if e.phase >= 1 {
		e.phase -= math.Floor(e.phase)
	}
	// Two detuned harmonics give the rumble.
	tone := 0.6*math.Sin(2*math.Pi*e.phase) + 0.4*math.Sin(4*math.Pi*e.phase+0.7)
	tone *= idleGain + revGain*e.curThr

	e.lp += (lcg(&e.seed) - e.lp) * 0.08
	hiss := e.lp * hissGain * e.curBrake

	e.sqPhase += squealFreq * (1 + 0.03*math.Sin(2*math.Pi*e.phase)) * dt
	if e.sqPhase >= 1 {
		e.sqPhase -= math.Floor(e.sqPhase)
	}
	squeal := math.Sin(2*math.Pi*e.sqPhase) * squealGain * e.curSkid

	s := softSat((tone + hiss + squeal) * volume)
	return s, s
}

// Read fills p with interleaved float32 little-endian stereo frames.
// It never returns io.EOF: the engine idles forever.
func (e *Engine) Read(p []byte) (int, error) {
	frames := len(p) / 8
	for i := 0; i < frames; i++ {
		l, r := e.Next()
		putF32(p[i*8:], l)
		putF32(p[i*8+4:], r)
	}
	return frames * 8, nil
}

// Stream fills samples with stereo frames in beep's streamer shape.
func (e *Engine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0], samples[i][1] = e.Next()
	}
	return len(samples), true
}

var _ io.Reader = (*Engine)(nil)

func putF32(buf []byte, v float64) {
	b := math.Float32bits(float32(v))
	buf[0] = byte(b)
	buf[1] = byte(b >> 8)
	buf[2] = byte(b >> 16)
	buf[3] = byte(b >> 24)
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances seed and returns noise in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		return math.Min(cur+maxDelta, target)
	}
	return math.Max(cur-maxDelta, target)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
