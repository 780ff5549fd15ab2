package sim

import (
	"testing"
	"time"
)

func TestNewSimSizesCanvasThroughResize(t *testing.T) {
	s := New(100, 80)
	if s.ResizeState() != ResizeNeeded {
		t.Fatalf("state = %v, want needed before the first frame", s.ResizeState())
	}
	if x, y, _ := s.Pose(); x != 50 || y != 40 {
		t.Fatalf("car at (%v, %v), want centred (50, 40)", x, y)
	}

	st := s.Frame(0)
	if !st.ResizeBegan || s.ResizeState() != Resizing {
		t.Fatalf("first frame: began %v state %v, want a snapshot in flight", st.ResizeBegan, s.ResizeState())
	}
	if !s.AwaitResize() {
		t.Fatal("AwaitResize found no snapshot")
	}
	if s.Canvas.Width() != 100 || s.Canvas.Height() != 80 {
		t.Fatalf("canvas = %dx%d, want 100x80", s.Canvas.Width(), s.Canvas.Height())
	}
	if s.ResizeState() != ResizeIdle {
		t.Fatalf("state = %v, want idle", s.ResizeState())
	}
}

func TestResizeDefersCanvasChangeUntilSnapshotLoads(t *testing.T) {
	s := New(100, 80)
	s.Frame(0)
	s.AwaitResize()
	s.Canvas.Stamp(10, 10, 0, 64, 1)

	s.RequestResize(50, 40)
	if s.ResizeState() != ResizeNeeded {
		t.Fatalf("state = %v, want needed after a resize event", s.ResizeState())
	}
	if w, h := s.Size(); w != 50 || h != 40 {
		t.Fatalf("viewport = %dx%d, want 50x40 immediately", w, h)
	}

	st := s.Frame(0)
	if !st.ResizeBegan || s.ResizeState() != Resizing {
		t.Fatalf("frame after resize: began %v state %v, want resizing", st.ResizeBegan, s.ResizeState())
	}
	if s.Canvas.Width() != 100 {
		t.Fatalf("canvas width = %d before the snapshot loaded, want 100", s.Canvas.Width())
	}

	s.AwaitResize()
	if s.Canvas.Width() != 50 || s.Canvas.Height() != 40 {
		t.Fatalf("canvas = %dx%d, want 50x40", s.Canvas.Width(), s.Canvas.Height())
	}
	if got := s.Canvas.Coverage(10, 10); got != 217 {
		t.Fatalf("backdrop alpha = %d, want 217 (faded old mark)", got)
	}
}

func TestFrameAppliesLoadedSnapshotOnPoll(t *testing.T) {
	s := New(64, 64)
	s.Frame(0)
	deadline := time.Now().Add(2 * time.Second)
	for s.ResizeState() != ResizeIdle {
		if time.Now().After(deadline) {
			t.Fatal("snapshot never loaded")
		}
		time.Sleep(time.Millisecond)
		s.Frame(0)
	}
	if s.Canvas.Width() != 64 {
		t.Fatalf("canvas width = %d, want 64", s.Canvas.Width())
	}
}

func TestRequestResizeIgnoresEmptyViewport(t *testing.T) {
	s := New(100, 80)
	s.Frame(0)
	s.AwaitResize()
	s.RequestResize(0, 300)
	if s.ResizeState() != ResizeIdle {
		t.Fatalf("state = %v, want idle for a zero-width viewport", s.ResizeState())
	}
}

func TestFrameStampsTrailWhileDriving(t *testing.T) {
	s := New(200, 200)
	s.Frame(0)
	s.AwaitResize()
	s.Input.KeyDown(KeyUp)
	s.Input.KeyDown(KeyRight)

	stamped := false
	for i := 1; i <= 60; i++ {
		st := s.Frame(time.Duration(i) * time.Second / 60)
		if st.Steps == 0 && i > 1 {
			t.Fatalf("frame %d ran no steps", i)
		}
		stamped = stamped || st.Stamped
	}
	if !stamped {
		t.Fatal("no trail stamped while accelerating through a turn")
	}
}

func TestTouchDriveUsesViewportAfterResize(t *testing.T) {
	s := New(300, 300)
	s.RequestResize(300, 90)
	s.Input.TouchBegin(7, 150, 60)
	s.Input.TouchMove(7, 150, 30)
	if got := s.Input.Mode().Controls().Up; got != 1 {
		t.Fatalf("up = %v after dragging a third of the new height, want 1", got)
	}
}
