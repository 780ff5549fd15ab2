package term

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"drift/internal/sim"
)

func TestCarGlyphByHeading(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '↑'},
		{math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{-math.Pi / 2, '←'},
		{math.Pi / 4, '↗'},
		{2 * math.Pi, '↑'},
		{-3 * math.Pi / 4, '↙'},
		{0.3, '↑'},
		{0.5, '↗'},
	}
	for _, tt := range tests {
		if got := carGlyph(tt.angle); got != tt.want {
			t.Fatalf("carGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestPixelColorOverGround(t *testing.T) {
	cv := sim.NewCanvas(2, 2)
	ground := tcell.NewRGBColor(216, 210, 191)
	if got := pixelColor(cv, 0, 0); got != ground {
		t.Fatalf("empty pixel = %v, want ground %v", got, ground)
	}
	if got := pixelColor(cv, 5, 5); got != ground {
		t.Fatalf("outside pixel = %v, want ground %v", got, ground)
	}

	img := cv.Image()
	i := img.PixOffset(1, 1)
	copy(img.Pix[i:i+4], []uint8{64, 64, 64, 255})
	if got, want := pixelColor(cv, 1, 1), tcell.NewRGBColor(64, 64, 64); got != want {
		t.Fatalf("opaque pixel = %v, want %v", got, want)
	}
}

func TestCellColorsSplitRows(t *testing.T) {
	cv := sim.NewCanvas(1, 2)
	img := cv.Image()
	i := img.PixOffset(0, 1)
	copy(img.Pix[i:i+4], []uint8{0, 0, 0, 255})

	top, bottom := cellColors(cv, 0, 0)
	if top != tcell.NewRGBColor(216, 210, 191) {
		t.Fatalf("top = %v, want ground", top)
	}
	if bottom != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("bottom = %v, want black", bottom)
	}
}

func TestCarCell(t *testing.T) {
	cx, cy := carCell(10.7, 21.9)
	if cx != 10 || cy != 10 {
		t.Fatalf("carCell = (%d, %d), want (10, 10)", cx, cy)
	}
}
