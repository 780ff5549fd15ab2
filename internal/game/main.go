//go:build !android

package game

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"drift/internal/config"
	"drift/internal/events"
	"drift/internal/sim"
	"drift/internal/sound"
)

// RunDesktop opens a window and drives the car until the window closes.
func RunDesktop(cfg config.Settings, log *slog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("window ready", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "w", cfg.Width, "h", cfg.Height)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	winW, winH := window.GetSize()
	s := sim.New(winW, winH)
	s.Clock.MaxFrame = sim.MaxFrameGap
	NewInput(window, s)

	var engine *sound.Engine
	if !cfg.Mute {
		engine = sound.NewEngine()
		audio, err := InitAudio(engine)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", "err", err)
			engine = nil
		} else {
			defer audio.Close()
		}
	}

	bus := events.NewEventBus()
	events.WireFrame(bus, log, engine)

	for !window.ShouldClose() {
		glfw.PollEvents()

		st := s.Frame(secondsToDuration(glfw.GetTime()))
		bus.PublishFrame(st)
		events.FeedEngine(engine, &s.Car)

		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()
		rend.UploadCanvas(s.Canvas)
		x, y, angle := s.Pose()
		rend.Draw(View{W: winW, H: winH, FbW: fbW, FbH: fbH}, x, y, angle)

		window.SwapBuffers()
	}
	log.Info("window closed", "steps", s.Clock.Steps())
	return nil
}
