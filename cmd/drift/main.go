//go:build !android

package main

import (
	"fmt"
	"os"

	"drift/internal/config"
	"drift/internal/game"
	"drift/internal/logging"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "drift: %v\n", err)
		os.Exit(2)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)
	if err := game.RunDesktop(cfg, log); err != nil {
		log.Error("drift failed", "err", err)
		os.Exit(1)
	}
}
