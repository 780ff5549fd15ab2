//go:build android

package game

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"drift/internal/config"
	"drift/internal/events"
	"drift/internal/palette"
	"drift/internal/sim"
	"drift/internal/sound"
)

const quadVertSrcMobile = `
attribute vec2 aPos;
attribute vec2 aUV;
varying vec2 vUV;
void main() {
  vUV = aUV;
  gl_Position = vec4(aPos, 0.0, 1.0);
}`

// Both textures hold premultiplied (or opaque) texels.
const quadFragSrcMobile = `
precision mediump float;
varying vec2 vUV;
uniform sampler2D uTex;
void main() {
  gl_FragColor = texture2D(uTex, vUV);
}`

type mobileGame struct {
	log    *slog.Logger
	sim    *sim.Sim
	engine *sound.Engine
	bus    *events.EventBus
	start  time.Time

	fbWidth     int
	fbHeight    int
	pixelsPerPt float32

	// GL blit resources
	prog       gl.Program
	canvasTex  gl.Texture
	carTex     gl.Texture
	vbo        gl.Buffer
	aPos       gl.Attrib
	aUV        gl.Attrib
	uTex       gl.Uniform
	texW, texH int
	glReady    bool
}

func newMobileGame(log *slog.Logger, engine *sound.Engine) *mobileGame {
	g := &mobileGame{
		log:         log,
		engine:      engine,
		bus:         events.NewEventBus(),
		start:       time.Now(),
		pixelsPerPt: 1,
	}
	events.WireFrame(g.bus, log, engine)
	return g
}

// handleSize creates the simulation on the first size event and resizes it
// on later ones.
func (g *mobileGame) handleSize(e size.Event) {
	g.fbWidth = e.WidthPx
	g.fbHeight = e.HeightPx
	if e.PixelsPerPt > 0 {
		g.pixelsPerPt = e.PixelsPerPt
	}
	if g.fbWidth <= 0 || g.fbHeight <= 0 {
		return
	}
	if g.sim == nil {
		g.sim = sim.New(g.fbWidth, g.fbHeight)
		g.sim.Clock.MaxFrame = sim.MaxFrameGap
		g.log.Info("sim ready", "w", g.fbWidth, "h", g.fbHeight)
		return
	}
	g.sim.RequestResize(g.fbWidth, g.fbHeight)
}

func (g *mobileGame) handleTouch(e touch.Event) {
	if g.sim == nil {
		return
	}
	id := sim.TouchID(e.Sequence)
	x, y := float64(e.X), float64(e.Y)
	switch e.Type {
	case touch.TypeBegin:
		g.sim.Input.TouchBegin(id, x, y)
	case touch.TypeMove:
		g.sim.Input.TouchMove(id, x, y)
	case touch.TypeEnd:
		g.sim.Input.TouchEnd(id)
	}
}

func (g *mobileGame) step() {
	if g.sim == nil {
		return
	}
	st := g.sim.Frame(time.Since(g.start))
	g.bus.PublishFrame(st)
	events.FeedEngine(g.engine, &g.sim.Car)
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", log)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", log)
	}
	return prog, nil
}

func newTextureMobile(glctx gl.Context) gl.Texture {
	tex := glctx.CreateTexture()
	glctx.BindTexture(gl.TEXTURE_2D, tex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

func (g *mobileGame) initGL(glctx gl.Context) error {
	if g.glReady {
		return nil
	}
	prog, err := linkProgram(glctx, quadVertSrcMobile, quadFragSrcMobile)
	if err != nil {
		return err
	}
	g.prog = prog
	g.aPos = glctx.GetAttribLocation(prog, "aPos")
	g.aUV = glctx.GetAttribLocation(prog, "aUV")
	g.uTex = glctx.GetUniformLocation(prog, "uTex")

	g.vbo = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	glctx.BufferData(gl.ARRAY_BUFFER, nil, gl.STREAM_DRAW)

	glctx.ActiveTexture(gl.TEXTURE0)
	g.canvasTex = newTextureMobile(glctx)
	g.texW, g.texH = 0, 0

	g.carTex = newTextureMobile(glctx)
	glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), CarTextureSize, CarTextureSize, gl.RGBA, gl.UNSIGNED_BYTE, carTexturePixels())

	glctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	g.glReady = true
	return nil
}

func (g *mobileGame) destroyGL(glctx gl.Context) {
	if !g.glReady {
		return
	}
	glctx.DeleteBuffer(g.vbo)
	glctx.DeleteTexture(g.canvasTex)
	glctx.DeleteTexture(g.carTex)
	glctx.DeleteProgram(g.prog)
	g.glReady = false
}

// uploadCanvas mirrors the trail raster into the canvas texture.
func (g *mobileGame) uploadCanvas(glctx gl.Context) {
	cv := g.sim.Canvas
	w, h := cv.Width(), cv.Height()
	if w == 0 || h == 0 {
		g.texW, g.texH = 0, 0
		return
	}
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, g.canvasTex)
	if w != g.texW || h != g.texH {
		glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), w, h, gl.RGBA, gl.UNSIGNED_BYTE, cv.Image().Pix)
		g.texW, g.texH = w, h
	} else if cv.Dirty() {
		glctx.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, cv.Image().Pix)
	}
	cv.ClearDirty()
}

// ndc maps a framebuffer pixel to clip space.
func (g *mobileGame) ndc(x, y float64) (float32, float32) {
	return float32(x/float64(g.fbWidth)*2 - 1), float32(1 - y/float64(g.fbHeight)*2)
}

// carQuad returns the car's four corners as a triangle strip of
// (x, y, u, v) vertices. The texture's first row is the nose.
func (g *mobileGame) carQuad(x, y, angle float64) []float32 {
	halfL := CarLength * float64(g.pixelsPerPt) / 2
	halfW := halfL * CarAspect
	fx, fy := math.Sin(angle), -math.Cos(angle)
	rx, ry := math.Cos(angle), math.Sin(angle)
	corner := func(side, forward, u, v float64) []float32 {
		px, py := g.ndc(x+rx*side*halfW+fx*forward*halfL, y+ry*side*halfW+fy*forward*halfL)
		return []float32{px, py, float32(u), float32(v)}
	}
	verts := make([]float32, 0, 16)
	verts = append(verts, corner(-1, -1, 0, 1)...)
	verts = append(verts, corner(1, -1, 1, 1)...)
	verts = append(verts, corner(-1, 1, 0, 0)...)
	verts = append(verts, corner(1, 1, 1, 0)...)
	return verts
}

func (g *mobileGame) drawQuad(glctx gl.Context, tex gl.Texture, verts []float32) {
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, tex)
	glctx.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(verts), gl.STREAM_DRAW)
	glctx.EnableVertexAttribArray(g.aPos)
	glctx.EnableVertexAttribArray(g.aUV)
	glctx.VertexAttribPointer(g.aPos, 2, gl.FLOAT, false, 16, 0)
	glctx.VertexAttribPointer(g.aUV, 2, gl.FLOAT, false, 16, 8)
	glctx.Uniform1i(g.uTex, 0)
	glctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

func (g *mobileGame) drawGL(glctx gl.Context) {
	if !g.glReady || g.sim == nil {
		return
	}
	if g.fbWidth <= 0 || g.fbHeight <= 0 {
		return
	}

	glctx.Viewport(0, 0, g.fbWidth, g.fbHeight)
	r, gg, b := palette.Ground.Floats()
	glctx.ClearColor(r, gg, b, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	glctx.UseProgram(g.prog)

	g.uploadCanvas(glctx)
	if g.texW > 0 && g.texH > 0 {
		x0, y0 := g.ndc(0, 0)
		x1, y1 := g.ndc(float64(g.texW), float64(g.texH))
		g.drawQuad(glctx, g.canvasTex, []float32{
			x0, y1, 0, 1,
			x1, y1, 1, 1,
			x0, y0, 0, 0,
			x1, y0, 1, 0,
		})
	}

	x, y, angle := g.sim.Pose()
	g.drawQuad(glctx, g.carTex, g.carQuad(x, y, angle))
	glctx.Disable(gl.BLEND)
}

// RunAndroid runs the toy inside the x/mobile app loop.
func RunAndroid(cfg config.Settings, log *slog.Logger) {
	var (
		engine *sound.Engine
		audio  *AudioSystem
	)
	if !cfg.Mute {
		engine = sound.NewEngine()
		var err error
		if audio, err = InitAudio(engine); err != nil {
			log.Warn("audio init failed, continuing without sound", "err", err)
			engine = nil
		}
	}
	game := newMobileGame(log, engine)

	app.Main(func(a app.App) {
		if audio != nil {
			defer audio.Close()
		}
		var glctx gl.Context

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := game.initGL(glctx); err != nil {
						log.Error("gl init failed", "err", err)
						return
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						game.destroyGL(glctx)
						glctx = nil
					}
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				game.handleSize(e)

			case touch.Event:
				game.handleTouch(e)

			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				game.step()
				game.drawGL(glctx)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
