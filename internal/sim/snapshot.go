package sim

import (
	"image"
	"image/draw"
)

// Snapshot is an in-flight capture of the canvas. The copy is taken
// synchronously; preparing the backdrop happens on its own goroutine,
// which delivers the result exactly once.
type Snapshot struct {
	ready chan *image.RGBA
}

// TakeSnapshot captures cv's current pixels.
func TakeSnapshot(cv *Canvas) *Snapshot {
	src := cv.Image()
	pix := make([]uint8, len(src.Pix))
	copy(pix, src.Pix)
	frozen := &image.RGBA{Pix: pix, Stride: src.Stride, Rect: src.Rect}

	s := &Snapshot{ready: make(chan *image.RGBA, 1)}
	go func() {
		out := image.NewRGBA(frozen.Rect)
		draw.Draw(out, out.Rect, frozen, frozen.Rect.Min, draw.Src)
		s.ready <- out
	}()
	return s
}

// Poll returns the backdrop if it has finished loading, without blocking.
func (s *Snapshot) Poll() (*image.RGBA, bool) {
	select {
	case img := <-s.ready:
		return img, true
	default:
		return nil, false
	}
}

// Wait blocks until the backdrop is ready.
func (s *Snapshot) Wait() *image.RGBA {
	return <-s.ready
}
