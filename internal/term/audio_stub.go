//go:build audio_stub

package term

import "drift/internal/sound"

// audioPlayer is a no-op for builds without a sound backend.
type audioPlayer struct{}

func newAudioPlayer(*sound.Engine) *audioPlayer { return &audioPlayer{} }

func (a *audioPlayer) Initialize() error { return nil }

func (a *audioPlayer) Cleanup() {}
