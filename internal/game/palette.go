package game

import "drift/internal/palette"

// carTexturePixels paints the 8×8 top-down car: lights and body at the
// nose (row 0), windscreen, roof, rear window, body.
func carTexturePixels() []uint8 {
	const s = CarTextureSize
	pix := make([]uint8, s*s*4)
	roof := palette.CarBody.Mul(180)
	rows := [s]palette.RGB{
		palette.CarLight, palette.CarBody, palette.CarWindow, roof,
		roof, palette.CarWindow, palette.CarBody, palette.CarBody,
	}
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			col := rows[y]
			// Headlights only at the corners of the nose.
			if y == 0 && x > 1 && x < s-2 {
				col = palette.CarBody
			}
			i := (y*s + x) * 4
			pix[i+0] = col.R
			pix[i+1] = col.G
			pix[i+2] = col.B
			pix[i+3] = 255
		}
	}
	return pix
}

// CarTextureSize is the edge of the square car texture.
const CarTextureSize = 8
