package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"drift/internal/palette"
	"drift/internal/sim"
)

// halfBlock draws the top pixel as foreground and the bottom one as background.
const halfBlock = '▀'

var carColor = rgb(palette.CarBody)

func rgb(c palette.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// arrows are indexed by heading octant, clockwise from up.
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// carGlyph picks the arrow closest to the car's heading. Angle 0 faces up
// and positive angles turn clockwise.
func carGlyph(angle float64) rune {
	oct := int(math.Round(angle/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return arrows[oct]
}

// pixelColor composites the canvas pixel at (x, y) over the ground. Pixels
// outside the canvas show bare ground.
func pixelColor(cv *sim.Canvas, x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= cv.Width() || y >= cv.Height() {
		return rgb(palette.Ground)
	}
	img := cv.Image()
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	inv := 255 - uint32(p[3])
	over := func(pre, ground uint8) int32 {
		return int32(uint32(pre) + (uint32(ground)*inv+127)/255)
	}
	g := palette.Ground
	return tcell.NewRGBColor(over(p[0], g.R), over(p[1], g.G), over(p[2], g.B))
}

// cellColors returns the colours of the two sim pixels a cell covers.
func cellColors(cv *sim.Canvas, cx, cy int) (top, bottom tcell.Color) {
	return pixelColor(cv, cx, cy*2), pixelColor(cv, cx, cy*2+1)
}

// carCell maps the car's position to the cell it occupies.
func carCell(x, y float64) (cx, cy int) {
	return int(x), int(y) / 2
}

// draw paints the canvas as half blocks, then the car arrow on top.
func draw(screen tcell.Screen, s *sim.Sim) {
	w, h := screen.Size()
	cv := s.Canvas
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			top, bottom := cellColors(cv, cx, cy)
			screen.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	x, y, angle := s.Pose()
	cx, cy := carCell(x, y)
	if cx >= 0 && cy >= 0 && cx < w && cy < h {
		_, bottom := cellColors(cv, cx, cy)
		style := tcell.StyleDefault.Foreground(carColor).Background(bottom).Bold(true)
		screen.SetContent(cx, cy, carGlyph(angle), nil, style)
	}
	screen.Show()
}
