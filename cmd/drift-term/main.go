package main

import (
	"fmt"
	"os"

	"drift/internal/config"
	"drift/internal/logging"
	"drift/internal/term"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "drift-term: %v\n", err)
		os.Exit(2)
	}
	// Stderr belongs to the screen; log to a file or nowhere.
	log, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drift-term: %v\n", err)
		os.Exit(2)
	}
	defer closer.Close()

	if err := term.Run(cfg, log); err != nil {
		log.Error("drift-term failed", "err", err)
		closer.Close()
		fmt.Fprintf(os.Stderr, "drift-term: %v\n", err)
		os.Exit(1)
	}
}
