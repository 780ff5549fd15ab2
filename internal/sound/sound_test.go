package sound

import (
	"encoding/binary"
	"math"
	"testing"
)

func rms(e *Engine, frames int) float64 {
	var sum float64
	for i := 0; i < frames; i++ {
		l, _ := e.Next()
		sum += l * l
	}
	return math.Sqrt(sum / float64(frames))
}

func TestThrottleRaisesLevel(t *testing.T) {
	idle := NewEngine()
	idleRMS := rms(idle, SampleRate/2)

	revving := NewEngine()
	revving.Set(1, 0)
	rms(revving, SampleRate/2) // let the voice slew up
	revRMS := rms(revving, SampleRate/2)

	if revRMS <= idleRMS*1.5 {
		t.Fatalf("rms at full throttle = %v, idle = %v; want clearly louder", revRMS, idleRMS)
	}
}

func TestOutputStaysInRange(t *testing.T) {
	e := NewEngine()
	e.Set(1, 1)
	e.Skid()
	for i := 0; i < SampleRate; i++ {
		l, r := e.Next()
		if l < -1 || l > 1 || l != r {
			t.Fatalf("frame %d = (%v, %v), want equal channels within [-1, 1]", i, l, r)
		}
	}
}

func TestSkidDecays(t *testing.T) {
	e := NewEngine()
	e.Skid()
	e.Next()
	if e.curSkid <= 0.9 {
		t.Fatalf("skid level = %v right after Skid, want near 1", e.curSkid)
	}
	for i := 0; i < SampleRate; i++ {
		e.Next()
	}
	if e.curSkid != 0 {
		t.Fatalf("skid level = %v after a second, want 0", e.curSkid)
	}
}

func TestReadWritesWholeFrames(t *testing.T) {
	e := NewEngine()
	buf := make([]byte, 8*16+3)
	n, err := e.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 8*16 {
		t.Fatalf("Read = %d bytes, want %d", n, 8*16)
	}
	l := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	if l != r {
		t.Fatalf("channels differ: %v vs %v", l, r)
	}
}

func TestStreamFillsBuffer(t *testing.T) {
	e := NewEngine()
	samples := make([][2]float64, 64)
	n, ok := e.Stream(samples)
	if n != 64 || !ok {
		t.Fatalf("Stream = (%d, %v), want (64, true)", n, ok)
	}
}

func TestSetClamps(t *testing.T) {
	e := NewEngine()
	e.Set(3, -2)
	if e.throttle.Get() != 1 || e.brake.Get() != 0 {
		t.Fatalf("targets = (%v, %v), want (1, 0)", e.throttle.Get(), e.brake.Get())
	}
}

func TestSkidDuringSquealRearms(t *testing.T) {
	e := NewEngine()
	e.Skid()
	for i := 0; i < SampleRate/8; i++ {
		e.Next()
	}
	half := e.curSkid
	e.Skid()
	e.Next()
	if e.curSkid <= half {
		t.Fatalf("skid level = %v after a second Skid, want above %v", e.curSkid, half)
	}
	if e.skid.Get() != 0 {
		t.Fatalf("pending skid = %v after it was consumed, want 0", e.skid.Get())
	}
}

func TestAtomicFloatSwap(t *testing.T) {
	var f atomicFloat
	f.Set(0.75)
	if old := f.Swap(0); old != 0.75 {
		t.Fatalf("Swap returned %v, want 0.75", old)
	}
	if got := f.Get(); got != 0 {
		t.Fatalf("Get = %v after Swap(0), want 0", got)
	}
}
