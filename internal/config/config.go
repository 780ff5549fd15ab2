// Package config loads runtime settings from the environment. Physics
// constants are fixed in package sim and are not configurable.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Window defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Settings are the runtime knobs shared by every frontend.
type Settings struct {
	Width    int        // initial window width, DRIFT_WIDTH
	Height   int        // initial window height, DRIFT_HEIGHT
	Mute     bool       // disable audio, DRIFT_MUTE
	LogLevel slog.Level // DRIFT_LOG_LEVEL
	LogFile  string     // DRIFT_LOG_FILE, terminal frontend only
}

// Default returns the settings used when no environment overrides are set.
func Default() Settings {
	return Settings{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		LogLevel: slog.LevelInfo,
	}
}

// FromEnv applies DRIFT_* overrides to the defaults.
func FromEnv() (Settings, error) {
	return parse(Default(), os.LookupEnv)
}

func parse(s Settings, lookup func(string) (string, bool)) (Settings, error) {
	if v, ok := lookup("DRIFT_WIDTH"); ok {
		n, err := parseDim(v)
		if err != nil {
			return s, fmt.Errorf("DRIFT_WIDTH: %w", err)
		}
		s.Width = n
	}
	if v, ok := lookup("DRIFT_HEIGHT"); ok {
		n, err := parseDim(v)
		if err != nil {
			return s, fmt.Errorf("DRIFT_HEIGHT: %w", err)
		}
		s.Height = n
	}
	if v, ok := lookup("DRIFT_MUTE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("DRIFT_MUTE: %w", err)
		}
		s.Mute = b
	}
	if v, ok := lookup("DRIFT_LOG_LEVEL"); ok && v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return s, fmt.Errorf("DRIFT_LOG_LEVEL: %w", err)
		}
		s.LogLevel = lvl
	}
	if v, ok := lookup("DRIFT_LOG_FILE"); ok {
		s.LogFile = v
	}
	return s, nil
}

func parseDim(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	if n < 64 || n > 16384 {
		return 0, fmt.Errorf("%d out of range [64, 16384]", n)
	}
	return n, nil
}

// ParseLevel maps DEBUG, INFO, WARN/WARNING and ERROR (any case) to a slog level.
func ParseLevel(v string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", v)
	}
}
