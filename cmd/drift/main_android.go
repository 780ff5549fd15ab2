//go:build android

package main

import (
	"os"

	"drift/internal/config"
	"drift/internal/game"
	"drift/internal/logging"
)

func main() {
	log := logging.New(os.Stderr, config.Default().LogLevel)
	cfg, err := config.FromEnv()
	if err != nil {
		log.Warn("ignoring environment settings", "err", err)
		cfg = config.Default()
	}
	game.RunAndroid(cfg, logging.New(os.Stderr, cfg.LogLevel))
}
