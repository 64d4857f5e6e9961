package main

import (
	"flag"
	"io"
	"log"
	"os"

	"chosenoffset.com/particles/internal/game"
	"chosenoffset.com/particles/internal/render/term"
	"chosenoffset.com/particles/internal/simulation"
)

func main() {
	configPath := flag.String("config", "particles.json", "path to the simulation config")
	seed := flag.Uint64("seed", 0, "random seed for launch velocities (0 picks one)")
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	// The terminal is the display, so log lines must not go to stderr.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Emitter.Seed = *seed
	}

	sys, err := cfg.Emitter.NewSystem()
	if err != nil {
		log.Fatal(err)
	}

	engine, err := term.NewEngine()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	engine.SetWindowTitle(cfg.Window.Title)

	g := game.NewGame(sys, term.NewRenderer(), engine.Input(), cfg.Window.Width, cfg.Window.Height)

	if *logPath == "" {
		log.SetOutput(io.Discard)
	}
	if err := engine.RunGame(g); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
