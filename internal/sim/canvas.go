package sim

import (
	"image"
	"math"
)

// Canvas is the persistent trail raster. Pixels are premultiplied RGBA and
// accumulate across frames; nothing clears them except a resize.
type Canvas struct {
	img   *image.RGBA
	dirty bool
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))), dirty: true}
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing raster. Callers must not retain it across a Resize.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Dirty reports whether pixels changed since the last ClearDirty.
func (c *Canvas) Dirty() bool { return c.dirty }

func (c *Canvas) ClearDirty() { c.dirty = false }

// Resize replaces the raster with an empty w×h one.
func (c *Canvas) Resize(w, h int) {
	c.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	c.dirty = true
}

// Stamp draws a 1×1 mark anchored at (x, y) and rotated by angle about that
// anchor, like fillRect under a rotated transform. Coverage is split
// bilinearly across the pixels under the rotated square's centre.
func (c *Canvas) Stamp(x, y, angle float64, grey uint8, alpha float64) {
	sin, cos := math.Sincos(angle)
	cx := x + 0.5*cos - 0.5*sin
	cy := y + 0.5*sin + 0.5*cos

	fx := cx - 0.5
	fy := cy - 0.5
	ix := int(math.Floor(fx))
	iy := int(math.Floor(fy))
	tx := fx - float64(ix)
	ty := fy - float64(iy)

	c.blend(ix, iy, grey, alpha*(1-tx)*(1-ty))
	c.blend(ix+1, iy, grey, alpha*tx*(1-ty))
	c.blend(ix, iy+1, grey, alpha*(1-tx)*ty)
	c.blend(ix+1, iy+1, grey, alpha*tx*ty)
}

// blend composites a grey source over the pixel at (x, y).
func (c *Canvas) blend(x, y int, grey uint8, a float64) {
	if a <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	o := c.img.PixOffset(x, y)
	p := c.img.Pix[o : o+4 : o+4]
	inv := 1 - a
	src := float64(grey) * a
	p[0] = clampByte(src + float64(p[0])*inv)
	p[1] = clampByte(src + float64(p[1])*inv)
	p[2] = clampByte(src + float64(p[2])*inv)
	p[3] = clampByte(255*a + float64(p[3])*inv)
	c.dirty = true
}

// DrawBackdrop composites img over the canvas at the origin with a global
// alpha. Parts of img outside the canvas are dropped.
func (c *Canvas) DrawBackdrop(img *image.RGBA, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	alpha = clampF(alpha, 0, 1)
	w := min(c.Width(), img.Rect.Dx())
	h := min(c.Height(), img.Rect.Dy())
	for y := 0; y < h; y++ {
		so := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		do := c.img.PixOffset(0, y)
		src := img.Pix[so : so+w*4]
		dst := c.img.Pix[do : do+w*4]
		for i := 0; i < len(src); i += 4 {
			sa := float64(src[i+3]) * alpha
			if sa == 0 {
				continue
			}
			inv := 1 - sa/255
			dst[i+0] = clampByte(float64(src[i+0])*alpha + float64(dst[i+0])*inv)
			dst[i+1] = clampByte(float64(src[i+1])*alpha + float64(dst[i+1])*inv)
			dst[i+2] = clampByte(float64(src[i+2])*alpha + float64(dst[i+2])*inv)
			dst[i+3] = clampByte(sa + float64(dst[i+3])*inv)
		}
	}
	c.dirty = true
}

// Coverage returns the alpha of the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas) Coverage(x, y int) uint8 {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return 0
	}
	return c.img.Pix[c.img.PixOffset(x, y)+3]
}
