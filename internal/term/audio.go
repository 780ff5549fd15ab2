//go:build !audio_stub

package term

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"drift/internal/sound"
)

// audioPlayer feeds the engine voice to the speaker through a mixer.
type audioPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

func newAudioPlayer(engine *sound.Engine) *audioPlayer {
	return &audioPlayer{
		mixer: &beep.Mixer{},
		ctrl:  &beep.Ctrl{Streamer: beep.StreamerFunc(engine.Stream)},
	}
}

// Initialize opens the speaker and starts the engine voice.
func (a *audioPlayer) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	sr := beep.SampleRate(sound.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	a.mixer.Add(a.ctrl)
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Cleanup silences the engine voice and clears the mixer.
func (a *audioPlayer) Cleanup() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Lock()
	a.ctrl.Paused = true
	a.mixer.Clear()
	speaker.Unlock()
	a.initialized = false
}
