package main

import (
	"flag"
	"log"

	"chosenoffset.com/particles/internal/game"
	ebitenrender "chosenoffset.com/particles/internal/render/ebiten"
	"chosenoffset.com/particles/internal/simulation"
)

func main() {
	configPath := flag.String("config", "particles.json", "path to the simulation config")
	seed := flag.Uint64("seed", 0, "random seed for launch velocities (0 picks one)")
	flag.Parse()

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

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	engine := ebitenrender.NewEngine()

	g := game.NewGame(sys, renderer, engine.Input(), cfg.Window.Width, cfg.Window.Height)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting particles...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
