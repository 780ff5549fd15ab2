//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"drift/internal/palette"
	"drift/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// View is the window in logical pixels plus its framebuffer in device pixels.
type View struct {
	W, H     int
	FbW, FbH int
}

// Scale is device pixels per logical pixel.
func (v View) Scale() float32 {
	if v.W <= 0 {
		return 1
	}
	return float32(v.FbW) / float32(v.W)
}

type Renderer struct {
	// Canvas program: the trail raster as a textured quad.
	canvasProg uint32
	quadVAO    uint32
	quadVBO    uint32
	canvasTex  uint32
	texW, texH int

	uSize       int32
	uResolution int32
	uTex        int32

	// Car program: one rotated point sprite.
	carProg uint32
	carVAO  uint32
	carVBO  uint32
	carTex  uint32

	carURes    int32
	carUSize   int32
	carUScale  int32
	carUTex    int32
	carUAspect int32
}

func NewRenderer() (*Renderer, error) {
	canvasProg, err := linkProgram(canvasVertSrc, canvasFragSrc)
	if err != nil {
		return nil, fmt.Errorf("canvas program: %w", err)
	}
	carProg, err := linkProgram(carVertSrc, carFragSrc)
	if err != nil {
		gl.DeleteProgram(canvasProg)
		return nil, fmt.Errorf("car program: %w", err)
	}

	r := &Renderer{
		canvasProg: canvasProg,
		carProg:    carProg,
	}

	// Canvas VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(canvasProg)
	r.uSize = gl.GetUniformLocation(canvasProg, gl.Str("uSize\x00"))
	r.uResolution = gl.GetUniformLocation(canvasProg, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(canvasProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	r.canvasTex = tex

	// Car VAO/VBO: x, y, rotation.
	var cVAO, cVBO uint32
	gl.GenVertexArrays(1, &cVAO)
	gl.GenBuffers(1, &cVBO)
	gl.BindVertexArray(cVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, cVBO)
	stride := int32(3 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	r.carVAO = cVAO
	r.carVBO = cVBO

	gl.UseProgram(carProg)
	r.carURes = gl.GetUniformLocation(carProg, gl.Str("uResolution\x00"))
	r.carUSize = gl.GetUniformLocation(carProg, gl.Str("uSize\x00"))
	r.carUScale = gl.GetUniformLocation(carProg, gl.Str("uScale\x00"))
	r.carUTex = gl.GetUniformLocation(carProg, gl.Str("uCarTex\x00"))
	r.carUAspect = gl.GetUniformLocation(carProg, gl.Str("uCarAspect\x00"))
	gl.Uniform1i(r.carUTex, 1)
	gl.Uniform1f(r.carUAspect, CarAspect)
	gl.Uniform1f(r.carUSize, CarLength)
	r.carTex = makeCarTexture()

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.carVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.carVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.canvasProg, r.carProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.canvasTex, r.carTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// UploadCanvas mirrors the trail raster into the canvas texture. The
// texture is re-specified when the canvas changed size and sub-updated
// when it is merely dirty.
func (r *Renderer) UploadCanvas(cv *sim.Canvas) {
	w, h := cv.Width(), cv.Height()
	if w == 0 || h == 0 {
		r.texW, r.texH = 0, 0
		return
	}
	img := cv.Image()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.canvasTex)
	if w != r.texW || h != r.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		r.texW, r.texH = w, h
	} else if cv.Dirty() {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	cv.ClearDirty()
}

// Draw clears to the ground colour, then draws the trail canvas and the car
// at (x, y) rotated by angle, all in logical pixels.
func (r *Renderer) Draw(view View, x, y, angle float64) {
	gl.Viewport(0, 0, int32(view.FbW), int32(view.FbH))
	cr, cg, cb := palette.Ground.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if view.W <= 0 || view.H <= 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	if r.texW > 0 && r.texH > 0 {
		gl.UseProgram(r.canvasProg)
		gl.BindVertexArray(r.quadVAO)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.canvasTex)
		gl.Uniform2f(r.uSize, float32(r.texW), float32(r.texH))
		gl.Uniform2f(r.uResolution, float32(view.W), float32(view.H))
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	car := [3]float32{float32(x), float32(y), float32(angle)}
	gl.UseProgram(r.carProg)
	gl.BindVertexArray(r.carVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.carVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(car)*4, gl.Ptr(&car[0]), gl.STREAM_DRAW)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.carTex)
	gl.Uniform2f(r.carURes, float32(view.W), float32(view.H))
	gl.Uniform1f(r.carUScale, view.Scale())
	gl.DrawArrays(gl.POINTS, 0, 1)

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
