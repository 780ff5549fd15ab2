//go:build audio_stub

package game

import "drift/internal/sound"

// AudioSystem is a no-op for builds without a sound backend.
type AudioSystem struct{}

func InitAudio(*sound.Engine) (*AudioSystem, error) { return &AudioSystem{}, nil }

func (a *AudioSystem) Close() error { return nil }
