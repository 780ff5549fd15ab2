// Package palette holds the colours every frontend draws with.
package palette

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var (
	Ground    = RGB{R: 216, G: 210, B: 191}
	CarBody   = RGB{R: 190, G: 70, B: 60}
	CarWindow = RGB{R: 140, G: 140, B: 140}
	CarLight  = RGB{R: 250, G: 230, B: 150}
)
