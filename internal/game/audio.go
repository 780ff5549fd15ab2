//go:build !audio_stub

package game

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/oto/v2"

	"drift/internal/sound"
)

const engineVolume = 0.8

// AudioSystem plays the engine voice through oto.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	engine *sound.Engine

	mu     sync.Mutex
	player oto.Player
	closed bool
}

// InitAudio opens the audio device and starts the engine voice once the
// device is ready.
func InitAudio(engine *sound.Engine) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	a := &AudioSystem{ctx: ctx, ready: ready, engine: engine}
	go a.start()
	return a, nil
}

func (a *AudioSystem) start() {
	<-a.ready
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.player = a.ctx.NewPlayer(a.engine)
	a.player.SetVolume(engineVolume)
	a.player.Play()
}

// Close stops the engine voice.
func (a *AudioSystem) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	if a.player == nil {
		return nil
	}
	return a.player.Close()
}
